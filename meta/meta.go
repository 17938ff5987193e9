// meta/meta.go
package meta

// DefaultDepth defines the search depth for minimax, negamax and alphabeta agents.
const DefaultDepth = 5

// DefaultIterations defines the number of iterations for MCTS.
const DefaultIterations = 500

// DefaultExploration defines the UCB1 exploration constant for MCTS.
const DefaultExploration = 0.7

// NumGames defines the number of games per experiment match-up.
const NumGames = 100

// OutputDir defines where experiment records are written.
const OutputDir = "experiments/results"
