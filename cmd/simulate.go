package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"github.com/AlessioQuercia/hearts-gym/analysis"
	"github.com/AlessioQuercia/hearts-gym/engine"
	"github.com/AlessioQuercia/hearts-gym/experiments/metrics"
	"github.com/AlessioQuercia/hearts-gym/meta"
	"github.com/AlessioQuercia/hearts-gym/policy"
	"github.com/AlessioQuercia/hearts-gym/reward"
)

func SimulateCommand() *cobra.Command {
	var (
		rounds      int
		players     int
		seed        uint64
		policyName  string
		temperature float64
		cfg         = reward.DefaultConfig()
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play rounds with a fixed evaluator config and print reward summaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := rand.New(rand.NewSource(seed))
			evaluator := reward.NewEvaluator(cfg)

			for i := 0; i < rounds; i++ {
				policies := make([]policy.Policy, players)
				for p := range policies {
					switch policyName {
					case "random":
						policies[p] = policy.NewRandom(rng.Uint64())
					case "softmax":
						policies[p] = policy.NewSoftmax(temperature, rng.Uint64())
					default:
						return fmt.Errorf("unknown policy %q", policyName)
					}
				}

				e, err := engine.NewLocalEngine(policies, evaluator, rng,
					engine.WithCollector(metrics.NewCollector()))
				if err != nil {
					return err
				}
				result, err := e.Run()
				if err != nil {
					return err
				}

				fmt.Printf("round %d (%s): penalties=%v moonShooter=%d\n",
					i+1, result.ID, result.Penalties, result.MoonShooter)
				for _, s := range analysis.Summarize(result.Rewards) {
					fmt.Printf("  player %d: steps=%d mean=%.4f stddev=%.4f min=%.4f max=%.4f\n",
						s.Player, s.Steps, s.Mean, s.StdDev, s.Min, s.Max)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&rounds, "rounds", 1, "number of rounds to play")
	cmd.Flags().IntVar(&players, "players", meta.NUM_PLAYERS, "number of players")
	cmd.Flags().Uint64Var(&seed, "seed", meta.SEED, "random seed")
	cmd.Flags().StringVar(&policyName, "policy", "softmax", "policy to play with (random|softmax)")
	cmd.Flags().Float64Var(&temperature, "temperature", meta.TEMPERATURE, "softmax policy temperature")
	cmd.Flags().Float64Var(&cfg.MoonShotBonus, "moon-bonus", cfg.MoonShotBonus, "moon-shot bonus as fraction of max penalty")
	cmd.Flags().Float64Var(&cfg.VoidQueenBonus, "void-queen-bonus", cfg.VoidQueenBonus, "queen discard bonus as fraction of max penalty")
	cmd.Flags().Float64Var(&cfg.LeadHeartsPenalty, "lead-hearts-penalty", cfg.LeadHeartsPenalty, "lead-hearts penalty as fraction of max penalty")
	cmd.Flags().Float64Var(&cfg.VoidSuitMultiplier, "void-multiplier", cfg.VoidSuitMultiplier, "rank multiplier for heart discards while void")
	cmd.Flags().Float64Var(&cfg.SurvivalReward, "survival-reward", cfg.SurvivalReward, "default reward in penalty points")

	return cmd
}
