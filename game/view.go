package game

// View is an immutable snapshot of the game state published once per
// simulation step. The reward evaluator only ever reads a View; the
// engine owns all mutation and publishes a fresh snapshot after every
// play, so evaluation for different players on the same snapshot is
// safe in any order.
type View struct {
	NumPlayers int

	// Hands holds, per player, the hand they held immediately before
	// their most recent play (the played card included). Nil for a
	// player who has not acted yet.
	Hands [][]Card

	// CurrentTrick and PreviousTrick are in play order: index 0 is the
	// card that led the trick.
	CurrentTrick  []PlayedCard
	PreviousTrick []PlayedCard

	// Played holds each player's most recently played card, or nil if
	// that player has taken no action since they were last scored.
	Played []*Card

	// Illegal flags whether each player's most recent action violated
	// the legal-move rules.
	Illegal []bool

	// Moon flags whether each player has collected every penalty card
	// this round.
	Moon []bool

	LeadingSuit         *Suit
	PreviousLeadingSuit *Suit

	// WasFirstTrick reports whether the previous trick was the round's
	// opening trick.
	WasFirstTrick bool

	// TrickWinner is the winner of the just-completed trick, or -1.
	TrickWinner int

	// TrickPenalty is the penalty assigned for the just-completed
	// trick; nil when no trick has completed.
	TrickPenalty *int

	// MaxPenalty is the normalization bound for rewards.
	MaxPenalty float64
}

// HandOf returns the hand the player held before their most recent play.
func (v *View) HandOf(player int) []Card {
	return v.Hands[player]
}

// PreviousPlayedCard returns the card the player most recently played.
// The second return value is false exactly when the player has taken no
// action since the evaluator last scored them; in that case the other
// per-player fields may be stale and must not be inspected.
func (v *View) PreviousPlayedCard(player int) (Card, bool) {
	c := v.Played[player]
	if c == nil {
		return Card{}, false
	}
	return *c, true
}

// WasIllegalPlay reports whether the player's most recent action
// violated the legal-move rules.
func (v *View) WasIllegalPlay(player int) bool {
	return v.Illegal[player]
}

// ShotTheMoon reports whether the player collected every penalty card
// this round.
func (v *View) ShotTheMoon(player int) bool {
	return v.Moon[player]
}
