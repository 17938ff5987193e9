package agent

import (
	"reversi/experiments/metrics"
	"reversi/game"

	"github.com/pkg/errors"
)

type Agent interface {
	// FindMove returns a legal move for the side to move and performance metrics (if collected) from the search
	FindMove(state game.State) (game.Move, metrics.SearchMetric)
}

// Func adapts a plain move selector to an Agent.
type Func func(state game.State) game.Move

func (f Func) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	return f(state), metrics.SearchMetric{}
}

// New builds the agent described by config. A nil collector disables metrics.
func New(config metrics.AgentConfig, collector metrics.Collector) (Agent, error) {
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	switch config.Algorithm {
	case metrics.Random:
		return NewRandomAgent(config.Seed), nil
	case metrics.MiniMax, metrics.NegaMax, metrics.AlphaBeta:
		if config.Depth <= 0 {
			return nil, errors.Errorf("%s agent %d needs a positive depth, got %d", config.Algorithm, config.ID, config.Depth)
		}
		return NewAdversarialAgent(config.Algorithm, config.Depth, collector), nil
	case metrics.MCTS:
		if config.Iterations <= 0 {
			return nil, errors.Errorf("mcts agent %d needs positive iterations, got %d", config.ID, config.Iterations)
		}
		options := mctsOptions(config, collector)
		if config.Sample {
			return NewTrainingAgent(config.Seed, options...), nil
		}
		return NewEvaluationAgent(options...), nil
	}
	return nil, errors.Errorf("unknown algorithm %q for agent %d", config.Algorithm, config.ID)
}

// TreeExporter is implemented by agents that keep a search tree between moves.
type TreeExporter interface {
	// ToDot renders the current search tree as Graphviz, or returns "" before the first search
	ToDot() string
}
