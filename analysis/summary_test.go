package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	t.Run("summarizes each player's trace", func(t *testing.T) {
		summaries := Summarize([][]float64{
			{1, -1},
			{0.5, 0.5, 0.5},
		})

		require.Len(t, summaries, 2)

		require.Equal(t, 0, summaries[0].Player)
		require.Equal(t, 2, summaries[0].Steps)
		require.InDelta(t, 0, summaries[0].Mean, 1e-9)
		require.InDelta(t, math.Sqrt2, summaries[0].StdDev, 1e-9)
		require.Equal(t, -1.0, summaries[0].Min)
		require.Equal(t, 1.0, summaries[0].Max)

		require.Equal(t, 1, summaries[1].Player)
		require.InDelta(t, 0.5, summaries[1].Mean, 1e-9)
		require.InDelta(t, 0, summaries[1].StdDev, 1e-9)
	})

	t.Run("empty traces yield zero summaries", func(t *testing.T) {
		summaries := Summarize([][]float64{{}})

		require.Equal(t, Summary{Player: 0}, summaries[0])
	})
}
