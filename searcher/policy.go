package searcher

import (
	"math"

	"reversi/game"
	"reversi/utils"

	"golang.org/x/exp/rand"
)

// StateActionStats are the statistics of one move at one state.
type StateActionStats struct {
	N     int     // Visits
	W     int     // Visits that ended in a positive reward
	Value float64 // UCB1 score
	P     float64 // Selection probability
}

// PolicyState holds the statistics of every legal move at one state, in LegalMoves order.
type PolicyState struct {
	N       int
	moves   []game.Move
	actions []StateActionStats
}

func newPolicyState(state game.State) *PolicyState {
	moves := state.LegalMoves()
	ps := &PolicyState{
		moves:   moves,
		actions: make([]StateActionStats, len(moves)),
	}
	for i := range ps.actions {
		ps.actions[i].P = 1 / float64(len(moves))
	}
	return ps
}

func (ps *PolicyState) Moves() []game.Move { return ps.moves }

// Action returns the statistics of move. ok is false if move is not legal at this state.
func (ps *PolicyState) Action(move game.Move) (stats StateActionStats, ok bool) {
	i := utils.FindIndex(ps.moves, move)
	if i < 0 {
		return StateActionStats{}, false
	}
	return ps.actions[i], true
}

func (ps *PolicyState) update(move game.Move, reward float64, c float64) {
	i := utils.FindIndex(ps.moves, move)
	if i < 0 {
		panic("move is not legal at this state")
	}
	ps.N++
	ps.actions[i].N++
	if reward > 0 {
		ps.actions[i].W++
	}
	ps.rebalance(c)
}

// rebalance recomputes every UCB1 value and spreads the selection probability evenly over the maximisers.
func (ps *PolicyState) rebalance(c float64) {
	c2LnN := c * c * math.Log(float64(ps.N))
	best := math.Inf(-1)
	for i := range ps.actions {
		a := &ps.actions[i]
		a.Value = ucb1(float64(a.W), a.N, c2LnN)
		if a.Value > best {
			best = a.Value
		}
	}

	ties := 0
	for _, a := range ps.actions {
		if a.Value == best {
			ties++
		}
	}
	for i := range ps.actions {
		if ps.actions[i].Value == best {
			ps.actions[i].P = 1 / float64(ties)
		} else {
			ps.actions[i].P = 0
		}
	}
}

// sample draws a move in proportion to P.
func (ps *PolicyState) sample(r *rand.Rand) game.Move {
	u := r.Float64()
	cumulative := 0.0
	last := -1
	for i, a := range ps.actions {
		if a.P <= 0 {
			continue
		}
		cumulative += a.P
		last = i
		if u < cumulative {
			return ps.moves[i]
		}
	}
	// Rounding left u above the cumulative sum
	if last < 0 {
		return ps.moves[len(ps.moves)-1]
	}
	return ps.moves[last]
}

func ucb1(rewards float64, visits int, c2LnN float64) float64 {
	// Prioritize unexplored actions
	if visits == 0 {
		return math.Inf(1)
	}

	return rewards/float64(visits) + math.Sqrt(c2LnN/float64(visits))
}

// RolloutPolicy picks moves during simulation.
type RolloutPolicy interface {
	Move(state game.State) game.Move
}

// TreePolicy is the table of statistics that guides selection.
type TreePolicy interface {
	RolloutPolicy
	Contains(state game.State) bool
	Add(state game.State)
	Update(state game.State, move game.Move, reward float64)
	Actions(state game.State) *PolicyState
	Len() int
	States() []game.State
	Reset()
}

// UCBPolicy keys its table by state content, so transpositions share statistics.
type UCBPolicy struct {
	exploration float64
	rand        *rand.Rand
	table       map[game.State]*PolicyState
}

func NewUCBPolicy(exploration float64, r *rand.Rand) *UCBPolicy {
	return &UCBPolicy{
		exploration: exploration,
		rand:        r,
		table:       make(map[game.State]*PolicyState),
	}
}

func (p *UCBPolicy) Contains(state game.State) bool {
	_, ok := p.table[state]
	return ok
}

// Add inserts state with a uniform selection probability. Adding a known state is a no-op.
func (p *UCBPolicy) Add(state game.State) {
	if p.Contains(state) {
		return
	}
	p.table[state] = newPolicyState(state)
}

// Move samples the selection probabilities of a state in the table.
func (p *UCBPolicy) Move(state game.State) game.Move {
	ps, ok := p.table[state]
	if !ok {
		panic("state is not in the policy table")
	}
	return ps.sample(p.rand)
}

func (p *UCBPolicy) Update(state game.State, move game.Move, reward float64) {
	ps, ok := p.table[state]
	if !ok {
		panic("state is not in the policy table")
	}
	ps.update(move, reward, p.exploration)
}

// Actions returns the statistics of a state, or nil if it is not in the table.
func (p *UCBPolicy) Actions(state game.State) *PolicyState {
	return p.table[state]
}

func (p *UCBPolicy) Len() int { return len(p.table) }

func (p *UCBPolicy) States() []game.State {
	states := make([]game.State, 0, len(p.table))
	for state := range p.table {
		states = append(states, state)
	}
	return states
}

// Reset drops every state.
func (p *UCBPolicy) Reset() {
	p.table = make(map[game.State]*PolicyState)
}

// RandomPolicy picks uniformly among the legal moves.
type RandomPolicy struct {
	rand *rand.Rand
}

func NewRandomPolicy(r *rand.Rand) *RandomPolicy {
	return &RandomPolicy{rand: r}
}

func (p *RandomPolicy) Move(state game.State) game.Move {
	moves := state.LegalMoves()
	return moves[p.rand.Intn(len(moves))]
}
