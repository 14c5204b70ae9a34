package policy

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/AlessioQuercia/hearts-gym/game"
)

// Softmax samples legal moves with probability decreasing in rank, so
// low cards are preferred but play stays stochastic. The temperature
// controls how sharply the distribution concentrates on the lowest
// card.
type Softmax struct {
	Temperature float64

	src rand.Source
}

func NewSoftmax(temperature float64, seed uint64) *Softmax {
	if temperature <= 0 {
		panic("temperature must be positive")
	}
	return &Softmax{
		Temperature: temperature,
		src:         rand.NewSource(seed),
	}
}

func (p *Softmax) PickCard(s *game.State) game.Card {
	legal := s.LegalMoves()
	if len(legal) == 1 {
		return legal[0]
	}

	weights := make([]float64, len(legal))
	for i, c := range legal {
		score := -float64(c.Rank-game.Two) / 12.0
		// Penalty cards are worth getting rid of, but not by taking
		// the trick: nudge their weight down only slightly.
		score -= 0.1 * float64(c.Penalty()) / float64(game.MaxPenalty)
		weights[i] = math.Exp(score / p.Temperature)
	}

	i, ok := sampleuv.NewWeighted(weights, p.src).Take()
	if !ok {
		return legal[0]
	}
	return legal[i]
}
