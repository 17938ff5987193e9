package searcher

import (
	"testing"

	"reversi/experiments/metrics"
	"reversi/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// Black has two moves: B7 wins by 6 after forced passes, H6 loses by 6 after white replies on B7.
var endgame = []string{
	"oooxxxxx",
	"ooxxxo.x",
	"oooxoxox",
	"ooooxoxx",
	"oooxooox",
	"ooooooox",
	"ooooooox",
	"xxxxx.xx",
}

func mustState(t *testing.T, rows []string, toMove game.Player) game.State {
	t.Helper()
	state, err := game.FromRows(rows, toMove)
	require.NoError(t, err)
	return state
}

// randomPositions plays random games from the start and keeps a position from each.
func randomPositions(seed uint64, count int) []game.State {
	r := rand.New(rand.NewSource(seed))
	positions := make([]game.State, 0, count)
	for len(positions) < count {
		state := game.New()
		plies := r.Intn(55)
		for i := 0; i < plies && !state.IsTerminal(); i++ {
			moves := state.LegalMoves()
			state = state.MustApply(moves[r.Intn(len(moves))])
		}
		positions = append(positions, state)
	}
	return positions
}

func TestMiniMax(t *testing.T) {
	t.Run("opening scores by depth", func(t *testing.T) {
		expected := []int{0, 3, 0, 3, -2}
		for depth, want := range expected {
			score, move := MiniMax(game.New(), game.PlayerBlack, depth, game.DiskDifferential)
			require.Equal(t, want, score, "Depth %d score", depth)
			if depth == 0 {
				require.Equal(t, game.Pass, move, "Depth 0 should not pick a move")
			} else {
				require.Equal(t, game.NewMove(2, 4), move, "Equal scores should keep the first legal move")
			}
		}
	})

	t.Run("deeper search sees past the immediate gain", func(t *testing.T) {
		state := mustState(t, endgame, game.PlayerBlack)

		score, move := MiniMax(state, game.PlayerBlack, 1, game.DiskDifferential)
		require.Equal(t, 1, score)
		require.Equal(t, game.NewMove(7, 5), move, "One ply should grab the bigger capture")

		score, move = MiniMax(state, game.PlayerBlack, 3, game.DiskDifferential)
		require.Equal(t, 6, score)
		require.Equal(t, game.NewMove(1, 6), move, "Three plies should find the winning line")
	})

	t.Run("terminal state is a leaf", func(t *testing.T) {
		state := mustState(t, endgame, game.PlayerBlack).MustApply(game.Pass).MustApply(game.Pass)
		require.True(t, state.IsTerminal())

		score, move := MiniMax(state, game.PlayerBlack, 5, game.DiskDifferential)
		require.Equal(t, -10, score)
		require.Equal(t, game.Pass, move)
	})

	t.Run("minimising root player", func(t *testing.T) {
		state := mustState(t, endgame, game.PlayerBlack)
		score, move := MiniMax(state, game.PlayerWhite, 3, game.DiskDifferential)
		require.Equal(t, -6, score, "White's view of black's best line")
		require.Equal(t, game.NewMove(1, 6), move, "Black still picks the move that is worst for white")
	})
}

func TestNegaMax(t *testing.T) {
	t.Run("matches minimax for the side to move", func(t *testing.T) {
		for i, state := range randomPositions(1, 60) {
			for depth := 1; depth <= 3; depth++ {
				wantScore, wantMove := MiniMax(state, state.ToMove(), depth, game.DiskDifferential)
				score, move := NegaMax(state, depth, game.DiskDifferential)
				require.Equal(t, wantScore, score, "Position %d depth %d score", i, depth)
				require.Equal(t, wantMove, move, "Position %d depth %d move", i, depth)
			}
		}
	})

	t.Run("endgame", func(t *testing.T) {
		score, move := NegaMax(mustState(t, endgame, game.PlayerBlack), 3, game.DiskDifferential)
		require.Equal(t, 6, score)
		require.Equal(t, game.NewMove(1, 6), move)
	})
}

func TestAlphaBeta(t *testing.T) {
	t.Run("matches minimax on random positions", func(t *testing.T) {
		players := []game.Player{game.PlayerBlack, game.PlayerWhite}
		for i, state := range randomPositions(2, 60) {
			root := players[i%2]
			for depth := 0; depth <= 3; depth++ {
				wantScore, _ := MiniMax(state, root, depth, game.DiskDifferential)
				score, move := AlphaBeta(state, root, depth, game.DiskDifferential)
				require.Equal(t, wantScore, score, "Position %d depth %d score", i, depth)
				if depth == 0 || state.IsTerminal() {
					require.Equal(t, game.Pass, move, "Position %d depth %d leaf", i, depth)
					continue
				}
				// Any move whose subtree reaches the optimum is acceptable.
				require.Contains(t, state.LegalMoves(), move, "Position %d depth %d move", i, depth)
				childScore, _ := MiniMax(state.MustApply(move), root, depth-1, game.DiskDifferential)
				require.Equal(t, wantScore, childScore, "Position %d depth %d move %s", i, depth, move)
			}
		}
	})

	t.Run("visits fewer nodes than minimax", func(t *testing.T) {
		collector := metrics.NewCollector()
		searcher := NewSearcher(4, WithMetrics(collector))

		collector.Start(metrics.MiniMax, 4)
		score, _ := searcher.MiniMax(game.New(), game.PlayerBlack)
		miniMaxNodes := collector.Complete().Nodes
		require.Equal(t, -2, score)
		require.Equal(t, 317, miniMaxNodes)

		collector.Start(metrics.AlphaBeta, 4)
		score, _ = searcher.AlphaBeta(game.New(), game.PlayerBlack)
		require.Equal(t, -2, score)
		require.Equal(t, 133, collector.Complete().Nodes)
	})

	t.Run("custom evaluator", func(t *testing.T) {
		corners := func(state game.State, p game.Player) int {
			score := 0
			for _, c := range [][2]int{{0, 0}, {0, 7}, {7, 0}, {7, 7}} {
				switch state.At(c[0], c[1]) {
				case game.Cell(p):
					score++
				case game.Cell(p.Opponent()):
					score--
				}
			}
			return score
		}
		state := mustState(t, endgame, game.PlayerBlack)
		wantScore, wantMove := MiniMax(state, game.PlayerBlack, 3, corners)
		score, move := AlphaBeta(state, game.PlayerBlack, 3, corners)
		require.Equal(t, wantScore, score)
		require.Equal(t, wantMove, move)
	})
}

func TestNewSearcher(t *testing.T) {
	t.Run("panics with negative depth", func(t *testing.T) {
		require.Panics(t, func() {
			NewSearcher(-1)
		}, "Should panic when depth is negative")
	})
}
