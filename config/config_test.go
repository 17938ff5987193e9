package config

import (
	"os"
	"path/filepath"
	"testing"

	"reversi/experiments/metrics"
	"reversi/meta"

	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Setup(New(), "")
		require.NoError(t, err)

		require.Equal(t, "info", cfg.LogLevel)
		require.Equal(t, meta.NumGames, cfg.Games)
		require.True(t, cfg.Alternate)
		require.Equal(t, metrics.AlphaBeta, cfg.Black.Algorithm)
		require.Equal(t, meta.DefaultDepth, cfg.Black.Depth)
		require.Equal(t, metrics.MCTS, cfg.White.Algorithm)
		require.Equal(t, meta.DefaultIterations, cfg.White.Iterations)
		require.InDelta(t, meta.DefaultExploration, cfg.White.Exploration, 1e-9)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "reversi.yaml")
		content := []byte("games: 4\nblack:\n  algorithm: minimax\n  depth: 2\nwhite:\n  algorithm: random\n  seed: 9\n")
		require.NoError(t, os.WriteFile(path, content, 0o644))

		cfg, err := Setup(New(), path)
		require.NoError(t, err)
		require.Equal(t, 4, cfg.Games)
		require.Equal(t, metrics.MiniMax, cfg.Black.Algorithm)
		require.Equal(t, 2, cfg.Black.Depth)
		require.Equal(t, 1, cfg.Black.ID, "Keys missing from the file keep their defaults")
		require.Equal(t, metrics.Random, cfg.White.Algorithm)
		require.Equal(t, uint64(9), cfg.White.Seed)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("REVERSI_WHITE_ITERATIONS", "42")
		t.Setenv("REVERSI_LOG_LEVEL", "debug")

		cfg, err := Setup(New(), "")
		require.NoError(t, err)
		require.Equal(t, 42, cfg.White.Iterations)
		require.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Setup(New(), filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("agents need distinct ids", func(t *testing.T) {
		v := New()
		v.Set("white.id", 1)
		_, err := Setup(v, "")
		require.Error(t, err)
	})
}
