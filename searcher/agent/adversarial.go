package agent

import (
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"

	"github.com/rs/zerolog/log"
)

type adversarialAgent struct {
	algorithm string
	searcher  *searcher.Searcher
	metrics   metrics.Collector
}

// NewAdversarialAgent returns an agent running minimax, negamax or alphabeta to a fixed depth with the disk
// differential as leaf evaluation.
func NewAdversarialAgent(algorithm string, depth int, collector metrics.Collector) Agent {
	switch algorithm {
	case metrics.MiniMax, metrics.NegaMax, metrics.AlphaBeta:
	default:
		panic("unsupported adversarial algorithm " + algorithm)
	}
	return &adversarialAgent{
		algorithm: algorithm,
		searcher:  searcher.NewSearcher(depth, searcher.WithMetrics(collector)),
		metrics:   collector,
	}
}

func NewMiniMaxAgent(depth int) Agent {
	return NewAdversarialAgent(metrics.MiniMax, depth, metrics.NewCollector())
}

func NewNegaMaxAgent(depth int) Agent {
	return NewAdversarialAgent(metrics.NegaMax, depth, metrics.NewCollector())
}

func NewAlphaBetaAgent(depth int) Agent {
	return NewAdversarialAgent(metrics.AlphaBeta, depth, metrics.NewCollector())
}

func (a *adversarialAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	a.metrics.Start(a.algorithm, a.searcher.MaxDepth())

	var score int
	var move game.Move
	switch a.algorithm {
	case metrics.MiniMax:
		score, move = a.searcher.MiniMax(state, state.ToMove())
	case metrics.NegaMax:
		score, move = a.searcher.NegaMax(state)
	case metrics.AlphaBeta:
		score, move = a.searcher.AlphaBeta(state, state.ToMove())
	}

	metric := a.metrics.Complete()
	log.Debug().Msgf("%s picked %v with score %d after %d nodes", a.algorithm, move, score, metric.Nodes)
	return move, metric
}
