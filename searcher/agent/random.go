package agent

import (
	"time"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	policy *searcher.RandomPolicy
}

// NewRandomAgent plays uniformly random legal moves. A zero seed is replaced by the clock.
func NewRandomAgent(seed uint64) Agent {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &randomAgent{policy: searcher.NewRandomPolicy(rand.New(rand.NewSource(seed)))}
}

func (a *randomAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	return a.policy.Move(state), metrics.SearchMetric{Algorithm: metrics.Random}
}
