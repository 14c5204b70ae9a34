package policy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AlessioQuercia/hearts-gym/game"
)

func clubs(ranks ...game.Rank) []game.Card {
	cards := make([]game.Card, len(ranks))
	for i, r := range ranks {
		cards[i] = game.Card{Suit: game.Clubs, Rank: r}
	}
	return cards
}

func TestRandomPicksLegalMoves(t *testing.T) {
	s, err := game.NewStateFromHands([][]game.Card{
		clubs(game.Three, game.Seven, game.Jack),
		{{Suit: game.Diamonds, Rank: game.Four}, {Suit: game.Diamonds, Rank: game.Ten}, {Suit: game.Diamonds, Rank: game.Ace}},
	}, 0)
	require.NoError(t, err)

	p := NewRandom(42)
	for i := 0; i < 50; i++ {
		require.Contains(t, s.LegalMoves(), p.PickCard(s),
			"Random must only pick legal moves")
	}
}

func TestSoftmax(t *testing.T) {
	t.Run("picks are always legal", func(t *testing.T) {
		s, err := game.NewStateFromHands([][]game.Card{
			clubs(game.Three, game.Seven, game.Jack, game.Ace),
			{{Suit: game.Diamonds, Rank: game.Four}, {Suit: game.Diamonds, Rank: game.Ten},
				{Suit: game.Diamonds, Rank: game.Queen}, {Suit: game.Diamonds, Rank: game.Ace}},
		}, 0)
		require.NoError(t, err)

		p := NewSoftmax(1.0, 42)
		for i := 0; i < 50; i++ {
			require.Contains(t, s.LegalMoves(), p.PickCard(s))
		}
	})

	t.Run("low cards dominate at low temperature", func(t *testing.T) {
		s, err := game.NewStateFromHands([][]game.Card{
			clubs(game.Three, game.Ace),
			{{Suit: game.Diamonds, Rank: game.Four}, {Suit: game.Diamonds, Rank: game.Ten}},
		}, 0)
		require.NoError(t, err)

		p := NewSoftmax(0.1, 7)
		counts := map[game.Card]int{}
		for i := 0; i < 200; i++ {
			counts[p.PickCard(s)]++
		}

		require.Greater(t,
			counts[game.Card{Suit: game.Clubs, Rank: game.Three}],
			counts[game.Card{Suit: game.Clubs, Rank: game.Ace}],
			"The lowest card should be picked far more often")
	})

	t.Run("a forced move needs no sampling", func(t *testing.T) {
		s, err := game.NewStateFromHands([][]game.Card{
			clubs(game.Three),
			{{Suit: game.Diamonds, Rank: game.Four}},
		}, 0)
		require.NoError(t, err)

		p := NewSoftmax(1.0, 1)
		require.Equal(t, game.Card{Suit: game.Clubs, Rank: game.Three}, p.PickCard(s))
	})

	t.Run("non-positive temperature panics", func(t *testing.T) {
		require.Panics(t, func() {
			NewSoftmax(0, 1)
		})
	})
}
