package searcher

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"reversi/game"

	"github.com/awalterschulze/gographviz"
)

// ToDot renders the policy table as a Graphviz digraph. Nodes are states, edges are visited moves between states
// that are both in the table.
func (m *MCTS) ToDot() string {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		panic(err)
	}
	g.SetDir(true)

	states := m.tree.States()
	sort.Slice(states, func(i, j int) bool { return states[i].Hash() < states[j].Hash() })

	for _, state := range states {
		ps := m.tree.Actions(state)
		attrs := map[string]string{
			"fontname": "Monaco",
			"shape":    "box",
			"label":    strconv.Quote(stateLabel(state, ps)),
		}
		if state == m.root {
			attrs["style"] = "bold"
		}
		g.AddNode("G", nodeID(state), attrs)
	}

	for _, state := range states {
		ps := m.tree.Actions(state)
		for i, move := range ps.moves {
			stats := ps.actions[i]
			if stats.N == 0 {
				continue
			}
			child := state.MustApply(move)
			if !m.tree.Contains(child) {
				continue
			}
			attrs := map[string]string{
				"label": strconv.Quote(fmt.Sprintf("%v %d/%d", move, stats.W, stats.N)),
			}
			g.AddEdge(nodeID(state), nodeID(child), true, attrs)
		}
	}
	return g.String()
}

func nodeID(state game.State) string {
	return fmt.Sprintf("s%016x", uint64(state.Hash()))
}

func stateLabel(state game.State, ps *PolicyState) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v to move, N=%d\n", state.ToMove(), ps.N)
	sb.WriteString(strings.Join(state.Rows(), "\n"))
	return sb.String()
}
