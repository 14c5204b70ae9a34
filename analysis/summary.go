package analysis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the reward trace one player accumulated over a
// round.
type Summary struct {
	Player int
	Steps  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize reduces per-player reward traces to summary statistics.
// Players with empty traces get a zero-valued summary.
func Summarize(rewards [][]float64) []Summary {
	summaries := make([]Summary, len(rewards))
	for player, trace := range rewards {
		s := Summary{Player: player, Steps: len(trace)}
		if len(trace) > 0 {
			s.Mean = stat.Mean(trace, nil)
			s.Min = floats.Min(trace)
			s.Max = floats.Max(trace)
		}
		if len(trace) > 1 {
			s.StdDev = stat.StdDev(trace, nil)
		}
		summaries[player] = s
	}
	return summaries
}
