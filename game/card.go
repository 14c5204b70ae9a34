package game

import "fmt"

type Suit int

const (
	Clubs Suit = iota // 0
	Diamonds          // 1
	Hearts            // 2
	Spades            // 3
)

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	}
	return fmt.Sprintf("Suit(%d)", int(s))
}

type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = map[Rank]string{
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
	Ace:   "Ace",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("%d", int(r))
}

// Card represents a single card of the standard 52-card deck.
type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

var (
	TwoOfClubs    = Card{Suit: Clubs, Rank: Two}
	QueenOfSpades = Card{Suit: Spades, Rank: Queen}
)

// MaxPenalty is the total penalty available in one round:
// 13 hearts plus the Queen of Spades.
const MaxPenalty = 26

// NumHearts is the number of heart cards in the deck.
const NumHearts = 13

// Penalty returns the penalty value a player is charged for capturing
// this card: 1 per heart, 13 for the Queen of Spades, 0 otherwise.
func (c Card) Penalty() int {
	switch {
	case c.Suit == Hearts:
		return 1
	case c == QueenOfSpades:
		return 13
	}
	return 0
}

// IsPenaltyCard reports whether capturing this card incurs penalty points.
func (c Card) IsPenaltyCard() bool {
	return c.Penalty() > 0
}
