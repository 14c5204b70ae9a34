package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrickWinner(t *testing.T) {
	t.Run("highest card of the leading suit wins", func(t *testing.T) {
		trick := NewTrick()
		trick.Add(Card{Suit: Clubs, Rank: Ten}, 0)
		trick.Add(Card{Suit: Clubs, Rank: King}, 1)
		trick.Add(Card{Suit: Clubs, Rank: Three}, 2)
		trick.Add(Card{Suit: Clubs, Rank: Jack}, 3)

		require.Equal(t, 1, trick.Winner(), "The king of clubs should take the trick")
	})

	t.Run("off-suit cards never win", func(t *testing.T) {
		trick := NewTrick()
		trick.Add(Card{Suit: Diamonds, Rank: Four}, 2)
		trick.Add(Card{Suit: Hearts, Rank: Ace}, 3)
		trick.Add(Card{Suit: Spades, Rank: Ace}, 0)
		trick.Add(Card{Suit: Diamonds, Rank: Nine}, 1)

		require.Equal(t, 1, trick.Winner(), "Only the leading suit competes for the trick")
	})

	t.Run("empty trick panics", func(t *testing.T) {
		require.Panics(t, func() {
			NewTrick().Winner()
		}, "Should panic when no cards were played")
	})
}

func TestTrickPenalty(t *testing.T) {
	trick := NewTrick()
	trick.Add(Card{Suit: Hearts, Rank: Two}, 0)
	trick.Add(Card{Suit: Hearts, Rank: Jack}, 1)
	trick.Add(QueenOfSpades, 2)
	trick.Add(Card{Suit: Clubs, Rank: Ace}, 3)

	require.Equal(t, 15, trick.Penalty(), "Two hearts and the queen are worth 15 points")
}

func TestTrickLookups(t *testing.T) {
	trick := NewTrick()
	trick.Add(Card{Suit: Spades, Rank: Seven}, 3)
	trick.Add(Card{Suit: Spades, Rank: Nine}, 0)

	suit, ok := trick.LeadingSuit()
	require.True(t, ok)
	require.Equal(t, Spades, suit)

	card, ok := trick.CardOf(0)
	require.True(t, ok)
	require.Equal(t, Card{Suit: Spades, Rank: Nine}, card)

	_, ok = trick.CardOf(2)
	require.False(t, ok, "Player 2 has not played into this trick")
}

func TestDeck(t *testing.T) {
	t.Run("a fresh deck holds 52 distinct cards", func(t *testing.T) {
		deck := NewDeck()

		require.Len(t, deck.Cards, 52)
		seen := map[Card]bool{}
		for _, c := range deck.Cards {
			require.False(t, seen[c], "Deck should not contain duplicates")
			seen[c] = true
		}
	})

	t.Run("dealing splits the deck evenly", func(t *testing.T) {
		deck := NewDeck()
		hands, err := deck.Deal(4)

		require.NoError(t, err)
		require.Len(t, hands, 4)
		for _, hand := range hands {
			require.Len(t, hand, 13)
		}
		require.Empty(t, deck.Cards, "Dealing should consume the deck")
	})

	t.Run("uneven deals are rejected", func(t *testing.T) {
		_, err := NewDeck().Deal(3)
		require.Error(t, err)
	})
}

func TestCardPenalty(t *testing.T) {
	require.Equal(t, 1, Card{Suit: Hearts, Rank: Two}.Penalty())
	require.Equal(t, 1, Card{Suit: Hearts, Rank: Ace}.Penalty())
	require.Equal(t, 13, QueenOfSpades.Penalty())
	require.Equal(t, 0, Card{Suit: Spades, Rank: King}.Penalty())
	require.Equal(t, 0, TwoOfClubs.Penalty())
}
