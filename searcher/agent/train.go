package agent

import (
	"math"
	"time"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"

	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	mcts        *searcher.MCTS
	options     []searcher.Option
	temperature float64
	rand        *rand.Rand
}

// NewTrainingAgent returns an MCTS agent that samples its move from the root visit counts, for varied self-play.
// The sampling temperature decays with every move, so later moves lean towards the most visited one.
// A zero seed is replaced by the clock.
func NewTrainingAgent(seed uint64, options ...searcher.Option) Agent {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &trainingAgent{
		options:     options,
		temperature: searcher.Temperature,
		rand:        rand.New(rand.NewSource(seed)),
	}
}

func (a *trainingAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	a.mcts = prepare(a.mcts, state, a.options)
	best, metric := a.mcts.Search()
	if state.IsTerminal() {
		return best, metric
	}

	moves := a.mcts.Actions(state).Moves()
	policy := adjustTemperature(moves, a.mcts.Visits(), a.temperature)
	a.temperature = math.Max(searcher.MinTemperature, a.temperature*searcher.TemperatureDecay)
	return sample(moves, policy, a.rand), metric
}

func adjustTemperature(moves []game.Move, visits map[game.Move]int, temperature float64) []float64 {
	// Compute temperature-adjusted move probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	policy := make([]float64, len(moves))
	for i, move := range moves {
		policy[i] = math.Pow(float64(visits[move]), exponent)
		sum += policy[i]
	}
	if sum == 0 {
		for i := range policy {
			policy[i] = 1 / float64(len(policy))
		}
		return policy
	}
	// Normalize
	for i := range policy {
		policy[i] /= sum
	}
	return policy
}

func sample(moves []game.Move, policy []float64, r *rand.Rand) game.Move {
	sampled := r.Float64()
	cumulative := 0.0
	for i, prob := range policy {
		cumulative += prob
		if sampled < cumulative {
			return moves[i]
		}
	}
	return moves[len(moves)-1] // Fallback in case of rounding errors
}

func (a *trainingAgent) ToDot() string {
	if a.mcts == nil {
		return ""
	}
	return a.mcts.ToDot()
}
