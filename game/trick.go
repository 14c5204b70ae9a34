package game

// PlayedCard stores a card along with the index of the player who played it.
type PlayedCard struct {
	Card   Card
	Player int
}

// Trick represents a single trick: each player plays exactly one card and
// the highest rank of the leading suit wins.
type Trick struct {
	Cards []PlayedCard
}

func NewTrick() *Trick {
	return &Trick{Cards: []PlayedCard{}}
}

// Add appends a card and the index of the player who played it.
func (t *Trick) Add(card Card, player int) {
	t.Cards = append(t.Cards, PlayedCard{Card: card, Player: player})
}

// LeadingSuit returns the suit of the first card played, if any.
func (t *Trick) LeadingSuit() (Suit, bool) {
	if len(t.Cards) == 0 {
		return 0, false
	}
	return t.Cards[0].Card.Suit, true
}

// CardOf returns the card the given player contributed to this trick.
func (t *Trick) CardOf(player int) (Card, bool) {
	for _, pc := range t.Cards {
		if pc.Player == player {
			return pc.Card, true
		}
	}
	return Card{}, false
}

// Winner returns the index of the player who played the highest card of
// the leading suit. Panics on an empty trick.
func (t *Trick) Winner() int {
	if len(t.Cards) == 0 {
		panic("cannot determine winner of an empty trick")
	}

	lead := t.Cards[0].Card.Suit
	winner := t.Cards[0].Player
	best := t.Cards[0].Card.Rank
	for _, pc := range t.Cards[1:] {
		if pc.Card.Suit == lead && pc.Card.Rank > best {
			best = pc.Card.Rank
			winner = pc.Player
		}
	}
	return winner
}

// Penalty returns the total penalty points contained in this trick.
func (t *Trick) Penalty() int {
	total := 0
	for _, pc := range t.Cards {
		total += pc.Card.Penalty()
	}
	return total
}
