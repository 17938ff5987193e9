package experiments

import (
	"reversi/experiments/metrics"
	"reversi/meta"
)

// Suites builds the predefined experiments by name for a number of games per match-up.
var Suites = map[string]func(games int) []MatchUp{
	"depth":      DepthSuite,
	"iterations": IterationsSuite,
	"algorithms": AlgorithmSuite,
}

// DepthSuite pairs alphabeta agents of increasing depth against a depth-1 baseline.
func DepthSuite(games int) []MatchUp {
	baseline := metrics.AgentConfig{ID: 0, Algorithm: metrics.AlphaBeta, Depth: 1}
	matchUps := []MatchUp{}
	for depth := 1; depth <= meta.DefaultDepth; depth++ {
		config := metrics.AgentConfig{ID: depth, Algorithm: metrics.AlphaBeta, Depth: depth}
		matchUps = append(matchUps, MatchUp{Agent1: config, Agent2: baseline, Games: games, Alternate: true})
	}
	return matchUps
}

// IterationsSuite pairs MCTS agents with growing iteration budgets against a fixed alphabeta opponent.
func IterationsSuite(games int) []MatchUp {
	baseline := metrics.AgentConfig{ID: 0, Algorithm: metrics.AlphaBeta, Depth: 3}
	budgets := []int{50, 100, 250, meta.DefaultIterations, 2 * meta.DefaultIterations}
	matchUps := []MatchUp{}
	for i, iterations := range budgets {
		config := metrics.AgentConfig{
			ID:          i + 1,
			Algorithm:   metrics.MCTS,
			Iterations:  iterations,
			Exploration: meta.DefaultExploration,
			Seed:        uint64(i + 1),
		}
		matchUps = append(matchUps, MatchUp{Agent1: config, Agent2: baseline, Games: games, Alternate: true})
	}
	return matchUps
}

// AlgorithmSuite plays every algorithm against a random baseline.
func AlgorithmSuite(games int) []MatchUp {
	baseline := metrics.AgentConfig{ID: 0, Algorithm: metrics.Random, Seed: 1}
	configs := []metrics.AgentConfig{
		{ID: 1, Algorithm: metrics.MiniMax, Depth: meta.DefaultDepth},
		{ID: 2, Algorithm: metrics.NegaMax, Depth: meta.DefaultDepth},
		{ID: 3, Algorithm: metrics.AlphaBeta, Depth: meta.DefaultDepth},
		{ID: 4, Algorithm: metrics.MCTS, Iterations: meta.DefaultIterations, Exploration: meta.DefaultExploration, Seed: 1},
	}
	matchUps := []MatchUp{}
	for _, config := range configs {
		matchUps = append(matchUps, MatchUp{Agent1: config, Agent2: baseline, Games: games, Alternate: true})
	}
	return matchUps
}
