package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiskDifferential(t *testing.T) {
	t.Run("zero-sum", func(t *testing.T) {
		state := mustRows(t, endgame, PlayerBlack)
		require.Equal(t, -10, DiskDifferential(state, PlayerBlack))
		require.Equal(t, 10, DiskDifferential(state, PlayerWhite))
	})

	t.Run("evaluate takes the mover's side", func(t *testing.T) {
		require.Equal(t, -10, Evaluate(mustRows(t, endgame, PlayerBlack)))
		require.Equal(t, 10, Evaluate(mustRows(t, endgame, PlayerWhite)))
	})
}
