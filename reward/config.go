package reward

// Config exposes the branch constants of the shaping policy as named
// options, so the behavioral variants explored during tuning are
// configuration rather than forked logic.
type Config struct {
	// MoonShotBonus is the raw reward for shooting the moon, as a
	// fraction of the view's MaxPenalty. The default of 1 makes it the
	// single largest positive outcome, normalizing to +1.
	MoonShotBonus float64

	// VoidQueenBonus is the raw reward for discarding the Queen of
	// Spades while void in the leading suit, as a fraction of
	// MaxPenalty.
	VoidQueenBonus float64

	// LeadHeartsPenalty is the raw penalty for leading a heart while
	// holding a non-heart alternative, as a fraction of MaxPenalty.
	LeadHeartsPenalty float64

	// VoidSuitMultiplier scales the rank reward when a player void in
	// the leading suit dumps a heart instead of an ordinary card.
	VoidSuitMultiplier float64

	// SurvivalReward is the raw reward, in penalty points, for a step
	// that matched no other rule.
	SurvivalReward float64
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		MoonShotBonus:      1,
		VoidQueenBonus:     1,
		LeadHeartsPenalty:  0.5,
		VoidSuitMultiplier: 2,
		SurvivalReward:     1,
	}
}
