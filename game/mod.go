package game

// Board dimensions. Only the standard 8x8 board is supported.
const (
	Size  = 8
	Cells = Size * Size
)

type StateHash uint64

// Evaluator scores a state from the perspective of the given player. Higher is better for that player.
type Evaluator func(state State, perspective Player) int
