package cmd

import (
	"github.com/spf13/cobra"

	"github.com/AlessioQuercia/hearts-gym/experiments"
	"github.com/AlessioQuercia/hearts-gym/meta"
)

func SweepCommand() *cobra.Command {
	cfg := experiments.SweepConfig{}

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sweep reward-shaping variants and store round and reward records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return experiments.RunRewardSweep(cfg, experiments.DefaultVariants())
		},
	}

	cmd.Flags().IntVar(&cfg.Rounds, "rounds", meta.ROUNDS, "rounds per variant")
	cmd.Flags().IntVar(&cfg.NumPlayers, "players", meta.NUM_PLAYERS, "number of players")
	cmd.Flags().Uint64Var(&cfg.Seed, "seed", meta.SEED, "random seed")
	cmd.Flags().Float64Var(&cfg.Temperature, "temperature", meta.TEMPERATURE, "softmax policy temperature")

	return cmd
}
