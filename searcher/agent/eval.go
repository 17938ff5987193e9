package agent

import (
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
)

type evaluationAgent struct {
	mcts    *searcher.MCTS
	options []searcher.Option
}

// NewEvaluationAgent returns an MCTS agent for actual game play: it plays the most visited move and keeps its policy
// table from one move to the next.
func NewEvaluationAgent(options ...searcher.Option) Agent {
	return &evaluationAgent{options: options}
}

func (a *evaluationAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	a.mcts = prepare(a.mcts, state, a.options)
	return a.mcts.Search()
}

// prepare creates the search on the first call and moves it to state afterwards.
func prepare(mcts *searcher.MCTS, state game.State, options []searcher.Option) *searcher.MCTS {
	if mcts == nil {
		return searcher.NewMCTS(state, options...)
	}
	mcts.SetRoot(state)
	return mcts
}

func mctsOptions(config metrics.AgentConfig, collector metrics.Collector) []searcher.Option {
	options := []searcher.Option{
		searcher.WithIterations(config.Iterations),
		searcher.WithMetrics(collector),
	}
	if config.Exploration > 0 {
		options = append(options, searcher.WithExploration(config.Exploration))
	}
	if config.Seed != 0 {
		options = append(options, searcher.WithSeed(config.Seed))
	}
	return options
}

func (a *evaluationAgent) ToDot() string {
	if a.mcts == nil {
		return ""
	}
	return a.mcts.ToDot()
}
