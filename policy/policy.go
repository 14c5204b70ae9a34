package policy

import (
	"golang.org/x/exp/rand"

	"github.com/AlessioQuercia/hearts-gym/game"
)

// Policy decides which card the current player plays. Policies are the
// acting side of the simulation; they never see rewards directly.
type Policy interface {
	PickCard(s *game.State) game.Card
}

// Random picks uniformly among the legal moves.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (p *Random) PickCard(s *game.State) game.Card {
	legal := s.LegalMoves()
	return legal[p.rng.Intn(len(legal))]
}
