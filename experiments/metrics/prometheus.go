package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "reversi"

// SearchMetrics holds the Prometheus series fed by every search, labelled by algorithm.
type SearchMetrics struct {
	SearchesTotal   *prometheus.CounterVec
	NodesTotal      *prometheus.CounterVec
	IterationsTotal *prometheus.CounterVec
	RolloutsTotal   *prometheus.CounterVec
	TableSize       *prometheus.GaugeVec
	DurationSeconds *prometheus.HistogramVec
}

// NewSearchMetrics registers the search series with reg. Register once per registry.
func NewSearchMetrics(reg prometheus.Registerer) *SearchMetrics {
	factory := promauto.With(reg)
	labels := []string{"algorithm"}
	return &SearchMetrics{
		SearchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "searches_total",
			Help:      "Completed move searches",
		}, labels),
		NodesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "nodes_total",
			Help:      "Game tree nodes visited by depth-bounded search",
		}, labels),
		IterationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "iterations_total",
			Help:      "MCTS iterations run",
		}, labels),
		RolloutsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "rollouts_total",
			Help:      "MCTS rollouts played to a terminal state",
		}, labels),
		TableSize: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "policy_table_states",
			Help:      "States held by the MCTS policy table after the last search",
		}, labels),
		DurationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Wall time of a single move search",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
		}, labels),
	}
}

// Collector returns a collector that keeps its own per-search tallies and mirrors them into m.
func (m *SearchMetrics) Collector() Collector {
	return &promCollector{metrics: m}
}

type promCollector struct {
	collector
	metrics *SearchMetrics
}

func (c *promCollector) AddNode() {
	c.collector.AddNode()
	c.metrics.NodesTotal.WithLabelValues(c.algorithm).Inc()
}

func (c *promCollector) AddIteration() {
	c.collector.AddIteration()
	c.metrics.IterationsTotal.WithLabelValues(c.algorithm).Inc()
}

func (c *promCollector) AddRollout() {
	c.collector.AddRollout()
	c.metrics.RolloutsTotal.WithLabelValues(c.algorithm).Inc()
}

func (c *promCollector) Complete() SearchMetric {
	metric := c.collector.Complete()
	c.metrics.SearchesTotal.WithLabelValues(c.algorithm).Inc()
	c.metrics.TableSize.WithLabelValues(c.algorithm).Set(float64(metric.TableSize))
	c.metrics.DurationSeconds.WithLabelValues(c.algorithm).Observe(metric.Duration.Seconds())
	return metric
}
