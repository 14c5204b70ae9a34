package reward

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/AlessioQuercia/hearts-gym/game"
)

// ErrContractViolation reports that the game-state view broke a
// documented invariant. It is not recoverable locally: continuing would
// silently fabricate a reward, so the simulation step must abort.
var ErrContractViolation = errors.New("game state contract violation")

// Evaluator computes the per-step shaped reward for a player from a
// game-state snapshot. It holds no mutable state: for a fixed view,
// Evaluate is referentially transparent.
type Evaluator struct {
	cfg Config
}

func NewEvaluator(cfg Config) *Evaluator {
	return &Evaluator{cfg: cfg}
}

// Evaluate returns the reward in [-1, 1] for the player with the given
// index. Rewards are delivered lazily: most of the time player is not
// the player that took the action (that is prevActive, which does not
// affect the outcome). trickIsOver reports whether the action that
// triggered this call completed a trick.
func (e *Evaluator) Evaluate(v *game.View, player, prevActive int, trickIsOver bool) (float64, error) {
	raw, err := e.raw(v, player, trickIsOver)
	if err != nil {
		return 0, err
	}

	// Normalize so that +1 and -1 stay reserved for the moon shot and
	// the illegal-action penalty.
	normalized := raw / v.MaxPenalty

	log.Debug().
		Int("player", player).
		Int("prevActive", prevActive).
		Bool("trickIsOver", trickIsOver).
		Float64("reward", normalized).
		Msg("evaluated reward")

	return normalized, nil
}

// raw applies the priority-ordered rule cascade; the first matching
// rule determines the pre-normalization reward.
func (e *Evaluator) raw(v *game.View, player int, trickIsOver bool) (float64, error) {
	// Rule violations are discouraged above all else.
	if v.WasIllegalPlay(player) {
		return -v.MaxPenalty, nil
	}

	played, ok := v.PreviousPlayedCard(player)
	if !ok {
		// The player has not taken a turn yet; no information to
		// provide, and the remaining fields may be stale for them.
		return 0, nil
	}

	if trickIsOver && v.ShotTheMoon(player) {
		return e.cfg.MoonShotBonus * v.MaxPenalty, nil
	}

	// No penalty card is legal on the opening trick, so spending a
	// high card there is free.
	if v.WasFirstTrick {
		if c, ok := trickCardOf(v.PreviousTrick, player); ok {
			played = c
		}
		return 1 + rankFraction(played.Rank), nil
	}

	if c, ok := trickCardOf(v.PreviousTrick, player); ok {
		return e.scoreTrickPlay(v, player, c), nil
	}

	if v.TrickWinner == player {
		if v.TrickPenalty == nil {
			return 0, fmt.Errorf("trick winner %d has no recorded trick penalty: %w",
				player, ErrContractViolation)
		}
		return -float64(*v.TrickPenalty), nil
	}

	// Survived to another turn without penalty.
	return e.cfg.SurvivalReward, nil
}

// scoreTrickPlay scores the card the player contributed to the previous
// trick against the hand they held at the time.
func (e *Evaluator) scoreTrickPlay(v *game.View, player int, played game.Card) float64 {
	hand := v.HandOf(player)

	if v.PreviousTrick[0].Player == player {
		// Leading a heart without necessity is discouraged.
		if played.Suit == game.Hearts && holdsOtherSuit(hand, game.Hearts) {
			return -e.cfg.LeadHeartsPenalty * v.MaxPenalty
		}
		// Low leads keep opponents from dumping penalty cards.
		return 2 - rankFraction(played.Rank)
	}

	lead := v.PreviousTrick[0].Card.Suit
	if v.PreviousLeadingSuit != nil {
		lead = *v.PreviousLeadingSuit
	}

	if !holdsSuit(hand, lead) {
		// Free to discard anything: prefer the Queen of Spades, then
		// the highest card, hearts weighted extra.
		if played == game.QueenOfSpades {
			return e.cfg.VoidQueenBonus * v.MaxPenalty
		}
		multiplier := 1.0
		if played.Suit == game.Hearts {
			multiplier = e.cfg.VoidSuitMultiplier
		}
		return 1 + rankFraction(played.Rank)*multiplier
	}

	// Had to follow suit: use as much of a safe high card as possible
	// without taking the trick. The comparison only counts cards that
	// were on the table before the player acted.
	if played.Rank > maxRankBefore(v.PreviousTrick, lead, player) {
		return -(1 + rankFraction(played.Rank))
	}
	return 1 + rankFraction(played.Rank)
}

// rankFraction maps Two..Ace onto [0, 1].
func rankFraction(r game.Rank) float64 {
	return float64(r-game.Two) / float64(game.Ace-game.Two)
}

func trickCardOf(trick []game.PlayedCard, player int) (game.Card, bool) {
	for _, pc := range trick {
		if pc.Player == player {
			return pc.Card, true
		}
	}
	return game.Card{}, false
}

func holdsSuit(hand []game.Card, suit game.Suit) bool {
	for _, c := range hand {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

func holdsOtherSuit(hand []game.Card, suit game.Suit) bool {
	for _, c := range hand {
		if c.Suit != suit {
			return true
		}
	}
	return false
}

// maxRankBefore returns the highest rank of the given suit played in
// the trick before the given player acted.
func maxRankBefore(trick []game.PlayedCard, suit game.Suit, player int) game.Rank {
	var best game.Rank
	for _, pc := range trick {
		if pc.Player == player {
			break
		}
		if pc.Card.Suit == suit && pc.Card.Rank > best {
			best = pc.Card.Rank
		}
	}
	return best
}
