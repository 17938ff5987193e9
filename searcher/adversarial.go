package searcher

import (
	"reversi/experiments/metrics"
	"reversi/game"
)

// Searcher runs depth-bounded game tree search. Every call owns its own board copies, so a Searcher may be reused
// for any number of searches, one at a time.
type Searcher struct {
	maxDepth int
	evaluate game.Evaluator
	metrics  metrics.Collector
}

// NewSearcher returns a searcher that stops maxDepth plies below the root.
// Only WithEvaluationFn and WithMetrics apply.
func NewSearcher(maxDepth int, options ...Option) *Searcher {
	if maxDepth < 0 {
		panic("search depth must not be negative")
	}
	c := newConfig(options)
	return &Searcher{
		maxDepth: maxDepth,
		evaluate: c.evaluate,
		metrics:  c.metrics,
	}
}

func (s *Searcher) MaxDepth() int { return s.maxDepth }

// MiniMax returns the minimax score of state for root and the first move that achieves it.
func MiniMax(state game.State, root game.Player, maxDepth int, evaluate game.Evaluator) (int, game.Move) {
	return NewSearcher(maxDepth, WithEvaluationFn(evaluate)).MiniMax(state, root)
}

// NegaMax returns the score of state for the side to move and the first move that achieves it.
func NegaMax(state game.State, maxDepth int, evaluate game.Evaluator) (int, game.Move) {
	return NewSearcher(maxDepth, WithEvaluationFn(evaluate)).NegaMax(state)
}

// AlphaBeta returns the same score as MiniMax while skipping branches that cannot change it.
func AlphaBeta(state game.State, root game.Player, maxDepth int, evaluate game.Evaluator) (int, game.Move) {
	return NewSearcher(maxDepth, WithEvaluationFn(evaluate)).AlphaBeta(state, root)
}

func (s *Searcher) MiniMax(state game.State, root game.Player) (int, game.Move) {
	return s.miniMax(state, root, 0)
}

func (s *Searcher) NegaMax(state game.State) (int, game.Move) {
	return s.negaMax(state, 0)
}

func (s *Searcher) AlphaBeta(state game.State, root game.Player) (int, game.Move) {
	return s.alphaBeta(state, root, 0, negInfinity, infinity)
}

func (s *Searcher) isLeaf(state game.State, depth int) bool {
	return state.IsTerminal() || depth == s.maxDepth
}

func (s *Searcher) miniMax(state game.State, root game.Player, depth int) (int, game.Move) {
	s.metrics.AddNode()
	if s.isLeaf(state, depth) {
		return s.evaluate(state, root), game.Pass
	}

	maximizing := state.ToMove() == root
	best, bestMove := infinity, game.Pass
	if maximizing {
		best = negInfinity
	}
	for _, move := range state.LegalMoves() {
		score, _ := s.miniMax(state.MustApply(move), root, depth+1)
		// Ties keep the earlier move
		if (maximizing && score > best) || (!maximizing && score < best) {
			best, bestMove = score, move
		}
	}
	return best, bestMove
}

func (s *Searcher) negaMax(state game.State, depth int) (int, game.Move) {
	s.metrics.AddNode()
	if s.isLeaf(state, depth) {
		return s.evaluate(state, state.ToMove()), game.Pass
	}

	best, bestMove := negInfinity, game.Pass
	for _, move := range state.LegalMoves() {
		score, _ := s.negaMax(state.MustApply(move), depth+1)
		if -score > best {
			best, bestMove = -score, move
		}
	}
	return best, bestMove
}

// alphaBeta is fail-hard: results are clamped to [alpha, beta], which is exact at the root where the window is
// unbounded.
func (s *Searcher) alphaBeta(state game.State, root game.Player, depth, alpha, beta int) (int, game.Move) {
	s.metrics.AddNode()
	if s.isLeaf(state, depth) {
		return s.evaluate(state, root), game.Pass
	}

	bestMove := game.Pass
	if state.ToMove() == root {
		for _, move := range state.LegalMoves() {
			score, _ := s.alphaBeta(state.MustApply(move), root, depth+1, alpha, beta)
			if score > alpha {
				alpha, bestMove = score, move
			}
			if alpha >= beta {
				break
			}
		}
		return alpha, bestMove
	}

	for _, move := range state.LegalMoves() {
		score, _ := s.alphaBeta(state.MustApply(move), root, depth+1, alpha, beta)
		if score < beta {
			beta, bestMove = score, move
		}
		if beta <= alpha {
			break
		}
	}
	return beta, bestMove
}
