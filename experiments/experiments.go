package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/AlessioQuercia/hearts-gym/engine"
	"github.com/AlessioQuercia/hearts-gym/experiments/metrics"
	"github.com/AlessioQuercia/hearts-gym/policy"
	"github.com/AlessioQuercia/hearts-gym/reward"
)

// EvaluatorConfig names one reward-shaping variant under sweep.
type EvaluatorConfig struct {
	Name   string
	Config reward.Config
}

// SweepConfig describes a reward sweep: every evaluator variant plays
// the same number of rounds with the same policy line-up.
type SweepConfig struct {
	Rounds      int
	NumPlayers  int
	Seed        uint64
	Temperature float64
}

// DefaultVariants covers the shaping variants explored during tuning:
// the behavioral differences live entirely in the config.
func DefaultVariants() []EvaluatorConfig {
	base := reward.DefaultConfig()

	aggressive := base
	aggressive.VoidSuitMultiplier = 5

	lenientLead := base
	lenientLead.LeadHeartsPenalty = 0

	return []EvaluatorConfig{
		{Name: "default", Config: base},
		{Name: "aggressive_dump", Config: aggressive},
		{Name: "lenient_lead", Config: lenientLead},
	}
}

// RunRewardSweep plays rounds for each evaluator variant and stores
// round and per-step reward records as CSV.
func RunRewardSweep(cfg SweepConfig, variants []EvaluatorConfig) error {
	rng := rand.New(rand.NewSource(cfg.Seed))

	roundRecords := []metrics.RoundRecord{}
	rewardRecords := []metrics.RewardRecord{}

	log.Info().Msgf("starting reward sweep over %d variants...", len(variants))

	for vi, variant := range variants {
		log.Info().Msgf("starting variant %d of %d (%s)...", vi+1, len(variants), variant.Name)

		evaluator := reward.NewEvaluator(variant.Config)
		for i := 0; i < cfg.Rounds; i++ {
			policies := make([]policy.Policy, cfg.NumPlayers)
			for p := range policies {
				policies[p] = policy.NewSoftmax(cfg.Temperature, rng.Uint64())
			}

			e, err := engine.NewLocalEngine(policies, evaluator, rng,
				engine.WithCollector(metrics.NewCollector()))
			if err != nil {
				return fmt.Errorf("variant %s round %d: %w", variant.Name, i+1, err)
			}

			result, err := e.Run()
			if err != nil {
				return fmt.Errorf("variant %s round %d: %w", variant.Name, i+1, err)
			}

			roundRecords = append(roundRecords, metrics.RoundRecord{
				ID:          result.ID,
				Config:      variant.Name,
				Penalties:   result.Penalties,
				MoonShooter: result.MoonShooter,
				RoundMetric: result.Metric,
			})
			for player, rewards := range result.Rewards {
				for step, r := range rewards {
					rewardRecords = append(rewardRecords, metrics.RewardRecord{
						Round:  result.ID,
						Step:   step + 1,
						Player: player,
						Reward: r,
					})
				}
			}
		}

		log.Info().Msgf("completed variant %d of %d (%s)", vi+1, len(variants), variant.Name)
	}

	log.Info().Msg("completed reward sweep")

	writer, err := metrics.NewWriter("reward_sweep")
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteRoundRecords(roundRecords)
	if err != nil {
		return fmt.Errorf("failed to write round records: %w", err)
	}
	log.Info().Msg("stored round records")

	err = writer.WriteRewardRecords(rewardRecords)
	if err != nil {
		return fmt.Errorf("failed to write reward records: %w", err)
	}
	log.Info().Msg("stored reward records")

	return nil
}
