package searcher

import "math"

// Hyperparameters for MCTS

const Exploration = 0.7 // c in the UCB1 exploration term

// Temperature schedule for sampling moves from visit counts during self-play
const (
	Temperature      = 1.0
	TemperatureDecay = 0.9 // applied after every sampled move
	MinTemperature   = 0.1
)

// Bounds for depth-bounded search. They are int so the scores stay exact.
const (
	infinity    = math.MaxInt
	negInfinity = -infinity
)
