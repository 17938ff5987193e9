package searcher

import (
	"reversi/experiments/metrics"
	"reversi/game"
)

type Option func(c *config)

type config struct {
	iterations  int
	exploration float64
	seed        uint64
	seeded      bool
	evaluate    game.Evaluator
	rollout     RolloutPolicy
	metrics     metrics.Collector
}

func newConfig(options []Option) config {
	c := config{ // Default values
		exploration: Exploration,
		evaluate:    game.DiskDifferential,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

// WithIterations sets the number of MCTS iterations run by Search.
func WithIterations(iterations int) Option {
	return func(c *config) {
		if iterations > 0 {
			c.iterations = iterations
		}
	}
}

func WithExploration(exploration float64) Option {
	return func(c *config) {
		if exploration >= 0 {
			c.exploration = exploration
		}
	}
}

// WithSeed makes every random choice of the search reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

func WithRolloutPolicy(policy RolloutPolicy) Option {
	return func(c *config) {
		if policy != nil {
			c.rollout = policy
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluator) Option {
	return func(c *config) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(c *config) {
		if collector != nil {
			c.metrics = collector
		}
	}
}
