package searcher

import (
	"time"

	"reversi/experiments/metrics"
	"reversi/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Segment is one step of an episode: a state in the policy table and the move selected there.
type Segment struct {
	State game.State
	Move  game.Move
}

// MCTS grows a policy table from a root state. Rewards are always taken from the perspective of the side to move
// at the root, so one MCTS serves one player. The table survives across SetRoot calls while that player stays the same.
type MCTS struct {
	iterations int
	evaluate   game.Evaluator
	tree       TreePolicy
	rollout    RolloutPolicy
	metrics    metrics.Collector
	root       game.State
	episode    []Segment
}

func NewMCTS(root game.State, options ...Option) *MCTS {
	c := newConfig(options)
	if c.iterations <= 0 {
		panic("Must specify search iterations")
	}
	if !c.seeded {
		c.seed = uint64(time.Now().UnixNano())
	}
	r := rand.New(rand.NewSource(c.seed))
	if c.rollout == nil {
		c.rollout = NewRandomPolicy(r)
	}

	m := &MCTS{
		iterations: c.iterations,
		evaluate:   c.evaluate,
		tree:       NewUCBPolicy(c.exploration, r),
		rollout:    c.rollout,
		metrics:    c.metrics,
		root:       root,
	}
	m.tree.Add(root)
	return m
}

func (m *MCTS) Root() game.State { return m.root }

// Len returns the number of states in the policy table.
func (m *MCTS) Len() int { return m.tree.Len() }

// SetRoot moves the search to a new root. The table is kept when the side to move is unchanged and cleared
// otherwise, since its rewards were recorded for the other player.
func (m *MCTS) SetRoot(state game.State) {
	reused := state.ToMove() == m.root.ToMove()
	if !reused {
		log.Debug().Msgf("root player changed from %v to %v, clearing %d states", m.root.ToMove(), state.ToMove(), m.tree.Len())
		m.tree.Reset()
	}
	m.root = state
	m.tree.Add(state)
	m.metrics.SetTreeReused(reused && m.tree.Len() > 1)
}

// Search runs the configured number of iterations and returns the most visited root move.
func (m *MCTS) Search() (game.Move, metrics.SearchMetric) {
	m.metrics.Start(metrics.MCTS, 0)
	m.UpdatePolicy(m.iterations)
	m.metrics.SetTableSize(m.tree.Len())
	move := m.BestMove()
	return move, m.metrics.Complete()
}

// UpdatePolicy runs n iterations of selection, expansion, simulation and backpropagation.
// A terminal root has nothing to search.
func (m *MCTS) UpdatePolicy(n int) {
	if m.root.IsTerminal() {
		log.Warn().Msgf("search requested from a terminal state")
		return
	}
	for i := 0; i < n; i++ {
		m.iterate()
		m.metrics.AddIteration()
	}
}

func (m *MCTS) iterate() {
	m.episode = m.episode[:0]
	leaf, reward, done := m.selectThenExpand()
	if !done {
		reward = m.simulate(leaf)
	}
	m.backup(reward)
}

// selectThenExpand follows the tree policy until it leaves the table, then adds the state it reached.
// Reaching a terminal state ends the episode with its reward.
func (m *MCTS) selectThenExpand() (game.State, float64, bool) {
	state := m.root
	for m.tree.Contains(state) {
		move := m.tree.Move(state)
		m.episode = append(m.episode, Segment{State: state, Move: move})
		state = state.MustApply(move)
		if state.IsTerminal() {
			return state, m.reward(state), true
		}
	}
	m.tree.Add(state)
	return state, 0, false
}

func (m *MCTS) simulate(state game.State) float64 {
	for !state.IsTerminal() {
		state = state.MustApply(m.rollout.Move(state))
	}
	m.metrics.AddRollout()
	return m.reward(state)
}

func (m *MCTS) reward(terminal game.State) float64 {
	return float64(m.evaluate(terminal, m.root.ToMove()))
}

func (m *MCTS) backup(reward float64) {
	for i := len(m.episode) - 1; i >= 0; i-- {
		segment := m.episode[i]
		m.tree.Update(segment.State, segment.Move, reward)
	}
	m.episode = m.episode[:0]
}

// GetMove samples the root selection probabilities.
func (m *MCTS) GetMove() game.Move {
	if m.root.IsTerminal() {
		return game.Pass
	}
	return m.tree.Move(m.root)
}

// BestMove returns the most visited root move. Ties go to the earlier legal move.
func (m *MCTS) BestMove() game.Move {
	if m.root.IsTerminal() {
		return game.Pass
	}
	ps := m.tree.Actions(m.root)
	best, maxVisits := ps.moves[0], -1
	for i, move := range ps.moves {
		if ps.actions[i].N > maxVisits {
			best, maxVisits = move, ps.actions[i].N
		}
	}
	return best
}

// Policy maps each root move to its selection probability.
func (m *MCTS) Policy() map[game.Move]float64 {
	policy := make(map[game.Move]float64)
	ps := m.tree.Actions(m.root)
	for i, move := range ps.moves {
		policy[move] = ps.actions[i].P
	}
	return policy
}

// Visits maps each root move to its visit count.
func (m *MCTS) Visits() map[game.Move]int {
	visits := make(map[game.Move]int)
	ps := m.tree.Actions(m.root)
	for i, move := range ps.moves {
		visits[move] = ps.actions[i].N
	}
	return visits
}

// Actions exposes the statistics of any state in the table, or nil.
func (m *MCTS) Actions(state game.State) *PolicyState {
	return m.tree.Actions(state)
}
