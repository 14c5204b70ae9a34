package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Deck represents a collection of cards.
type Deck struct {
	Cards []Card
}

// NewDeck creates the standard 52-card deck.
func NewDeck() *Deck {
	cards := make([]Card, 0, 52)
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}
	return &Deck{Cards: cards}
}

// Shuffle randomizes the order of cards in the deck.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Deal distributes the whole deck evenly across numPlayers hands.
// The deck size must be divisible by the number of players.
func (d *Deck) Deal(numPlayers int) ([][]Card, error) {
	if numPlayers <= 0 || len(d.Cards)%numPlayers != 0 {
		return nil, fmt.Errorf("cannot deal %d cards to %d players evenly", len(d.Cards), numPlayers)
	}

	perPlayer := len(d.Cards) / numPlayers
	hands := make([][]Card, numPlayers)
	start := 0
	for i := 0; i < numPlayers; i++ {
		hand := make([]Card, perPlayer)
		copy(hand, d.Cards[start:start+perPlayer])
		hands[i] = hand
		start += perPlayer
	}

	d.Cards = nil
	return hands, nil
}
