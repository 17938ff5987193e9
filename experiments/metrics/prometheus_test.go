package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestSearchMetrics(t *testing.T) {
	t.Run("mirrors searches by algorithm", func(t *testing.T) {
		m := NewSearchMetrics(prometheus.NewRegistry())
		black, white := m.Collector(), m.Collector()

		black.Start(AlphaBeta, 3)
		black.AddNode()
		black.AddNode()
		black.AddNode()
		metric := black.Complete()
		require.Equal(t, 3, metric.Nodes, "Local tallies should still be returned")

		white.Start(MCTS, 0)
		white.AddIteration()
		white.AddRollout()
		white.SetTableSize(12)
		white.Complete()

		require.InDelta(t, 3, testutil.ToFloat64(m.NodesTotal.WithLabelValues(AlphaBeta)), 0)
		require.InDelta(t, 1, testutil.ToFloat64(m.SearchesTotal.WithLabelValues(AlphaBeta)), 0)
		require.InDelta(t, 1, testutil.ToFloat64(m.IterationsTotal.WithLabelValues(MCTS)), 0)
		require.InDelta(t, 1, testutil.ToFloat64(m.RolloutsTotal.WithLabelValues(MCTS)), 0)
		require.InDelta(t, 12, testutil.ToFloat64(m.TableSize.WithLabelValues(MCTS)), 0)
		require.Equal(t, 2, testutil.CollectAndCount(m.DurationSeconds), "One histogram series per algorithm")
	})

	t.Run("counters accumulate across searches", func(t *testing.T) {
		m := NewSearchMetrics(prometheus.NewRegistry())
		c := m.Collector()
		for i := 0; i < 3; i++ {
			c.Start(MiniMax, 2)
			c.AddNode()
			c.Complete()
		}
		require.InDelta(t, 3, testutil.ToFloat64(m.NodesTotal.WithLabelValues(MiniMax)), 0)
		require.InDelta(t, 3, testutil.ToFloat64(m.SearchesTotal.WithLabelValues(MiniMax)), 0)
	})
}
