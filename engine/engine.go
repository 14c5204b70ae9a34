package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/AlessioQuercia/hearts-gym/experiments/metrics"
	"github.com/AlessioQuercia/hearts-gym/game"
	"github.com/AlessioQuercia/hearts-gym/policy"
	"github.com/AlessioQuercia/hearts-gym/reward"
)

// RoundResult holds the outcome of one simulated round.
type RoundResult struct {
	ID          string
	Penalties   []int
	Rewards     [][]float64 // Per player, one reward per simulation step
	MoonShooter int         // -1 when nobody shot the moon
	Steps       int
	Metric      metrics.RoundMetric
}

type Option func(e *LocalEngine)

func WithCollector(c metrics.Collector) Option {
	return func(e *LocalEngine) {
		if c != nil {
			e.collector = c
		}
	}
}

// LocalEngine runs a full round in-process: each step the active
// player's policy picks a card, the state advances, and every player is
// scored against the freshly published snapshot. The engine owns all
// state mutation; the evaluator only ever sees immutable views.
type LocalEngine struct {
	state     *game.State
	policies  []policy.Policy
	evaluator *reward.Evaluator
	collector metrics.Collector
}

func NewLocalEngine(policies []policy.Policy, evaluator *reward.Evaluator, rng *rand.Rand, options ...Option) (*LocalEngine, error) {
	if len(policies) < 2 {
		return nil, fmt.Errorf("need at least two players, got %d", len(policies))
	}

	state, err := game.NewState(len(policies), rng)
	if err != nil {
		return nil, err
	}

	e := &LocalEngine{
		state:     state,
		policies:  policies,
		evaluator: evaluator,
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// Run executes the round until every card has been played.
func (e *LocalEngine) Run() (*RoundResult, error) {
	numPlayers := len(e.policies)
	result := &RoundResult{
		ID:          uuid.New().String(),
		Rewards:     make([][]float64, numPlayers),
		MoonShooter: -1,
	}

	e.collector.Start()
	log.Info().Str("round", result.ID).Int("startingPlayer", e.state.CurrentPlayer).Msg("round started")

	for !e.state.RoundOver() {
		active := e.state.CurrentPlayer
		card := e.policies[active].PickCard(e.state)

		trickDone, err := e.state.Play(card)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", result.Steps, err)
		}
		result.Steps++
		e.collector.AddStep()
		if trickDone {
			e.collector.AddTrick()
		}

		view := e.state.Snapshot()
		if view.WasIllegalPlay(active) {
			e.collector.AddIllegalPlay()
		}

		for p := 0; p < numPlayers; p++ {
			r, err := e.evaluator.Evaluate(view, p, active, trickDone)
			if err != nil {
				// A contract violation would fabricate rewards; abort
				// the simulation step instead.
				return nil, fmt.Errorf("scoring player %d at step %d: %w", p, result.Steps, err)
			}
			result.Rewards[p] = append(result.Rewards[p], r)
		}

		log.Debug().
			Str("round", result.ID).
			Int("step", result.Steps).
			Int("player", active).
			Stringer("card", card).
			Bool("trickDone", trickDone).
			Msg("step complete")
	}

	result.Penalties = e.state.Penalties()
	for p := 0; p < numPlayers; p++ {
		if e.state.HasShotTheMoon(p) {
			result.MoonShooter = p
		}
	}
	result.Metric = e.collector.Complete()

	log.Info().
		Str("round", result.ID).
		Ints("penalties", result.Penalties).
		Int("moonShooter", result.MoonShooter).
		Msg("round complete")

	return result, nil
}
