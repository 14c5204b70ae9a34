package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/AlessioQuercia/hearts-gym/experiments/metrics"
	"github.com/AlessioQuercia/hearts-gym/policy"
	"github.com/AlessioQuercia/hearts-gym/reward"
)

func newPolicies(n int, seed uint64) []policy.Policy {
	policies := make([]policy.Policy, n)
	for i := range policies {
		policies[i] = policy.NewRandom(seed + uint64(i))
	}
	return policies
}

func TestNewLocalEngine(t *testing.T) {
	t.Run("rejects fewer than two players", func(t *testing.T) {
		_, err := NewLocalEngine(newPolicies(1, 1), reward.NewEvaluator(reward.DefaultConfig()),
			rand.New(rand.NewSource(1)))
		require.Error(t, err)
	})
}

func TestRunRound(t *testing.T) {
	t.Run("a full round plays every card and scores every step", func(t *testing.T) {
		e, err := NewLocalEngine(newPolicies(4, 10), reward.NewEvaluator(reward.DefaultConfig()),
			rand.New(rand.NewSource(10)), WithCollector(metrics.NewCollector()))
		require.NoError(t, err)

		result, err := e.Run()
		require.NoError(t, err)

		require.Equal(t, 52, result.Steps, "Four players play 13 tricks of 4 cards")
		require.Equal(t, 52, result.Metric.Steps)
		require.Equal(t, 13, result.Metric.Tricks)

		total := 0
		for _, p := range result.Penalties {
			total += p
		}
		require.Equal(t, 26, total, "All 26 penalty points are awarded every round")

		for player, rewards := range result.Rewards {
			require.Len(t, rewards, 52, "Every player is scored once per step")
			for _, r := range rewards {
				require.GreaterOrEqual(t, r, -1.0, "player %d reward out of range", player)
				require.LessOrEqual(t, r, 1.0, "player %d reward out of range", player)
			}
		}
	})

	t.Run("the same seed reproduces the same round", func(t *testing.T) {
		run := func() *RoundResult {
			e, err := NewLocalEngine(newPolicies(4, 99), reward.NewEvaluator(reward.DefaultConfig()),
				rand.New(rand.NewSource(99)))
			require.NoError(t, err)
			result, err := e.Run()
			require.NoError(t, err)
			return result
		}

		first := run()
		second := run()

		require.Equal(t, first.Penalties, second.Penalties)
		require.Equal(t, first.Rewards, second.Rewards)
		require.Equal(t, first.MoonShooter, second.MoonShooter)
	})

	t.Run("legal policies never trigger the illegal-play penalty", func(t *testing.T) {
		e, err := NewLocalEngine(newPolicies(4, 23), reward.NewEvaluator(reward.DefaultConfig()),
			rand.New(rand.NewSource(23)), WithCollector(metrics.NewCollector()))
		require.NoError(t, err)

		result, err := e.Run()
		require.NoError(t, err)

		require.Zero(t, result.Metric.IllegalPlays,
			"Policies picking from LegalMoves cannot play illegally")
	})
}
