package engine

import (
	"reversi/experiments/metrics"
	"reversi/game"
)

// MaxMoves bounds a game. Every placement fills a cell and passes cannot repeat without ending the game, so a
// legal game stays far below it.
const MaxMoves = 200

type Result struct {
	State game.State
	Game  metrics.GameMetric
	Moves []metrics.MoveMetric
}

type Engine interface {
	// Run plays a game until it is over or a max number of moves is reached
	Run() (Result, error)
}
