package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"reversi/game"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "match")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())
	require.Equal(t, filepath.Join(root, "match"), filepath.Dir(w.Dir()))

	t.Run("agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Algorithm: AlphaBeta, Depth: 4},
			{ID: 2, Algorithm: MCTS, Iterations: 500, Exploration: 0.7, Seed: 9},
		})
		require.NoError(t, err)

		records := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Len(t, records, 3)
		require.Equal(t, []string{"id", "algorithm", "depth", "iterations", "exploration", "seed", "sample"}, records[0])
		require.Equal(t, []string{"2", "mcts", "0", "500", "0.7", "9", "false"}, records[2])
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID: 1, Agent1: 1, Agent2: 2, Black: 1,
			GameMetric: GameMetric{
				StartingPlayer: game.PlayerBlack,
				Winner:         "black",
				BlackScore:     10,
				WhiteScore:     -10,
				StartTime:      start,
				EndTime:        start.Add(time.Second),
				Duration:       time.Second,
				TotalMoves:     61,
			},
		}})
		require.NoError(t, err)

		records := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, records, 2)
		require.Equal(t, []string{"1", "1", "2", "1", "black", "10", "-10", "61", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s"}, records[1])
	})

	t.Run("move records", func(t *testing.T) {
		err := w.WriteMoveRecords([]MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step:   1,
				Player: game.PlayerWhite,
				Move:   game.NewMove(2, 3),
				SearchMetric: SearchMetric{
					Algorithm: MiniMax,
					Nodes:     17,
				},
			},
		}})
		require.NoError(t, err)

		records := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, records, 2)
		require.Equal(t, []string{"1", "1", "white", "C4", "minimax", "0s", "17", "0", "0", "0", "false"}, records[1])
	})
}
