package engine

import (
	"testing"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher/agent"

	"github.com/stretchr/testify/require"
)

func TestLocalEngine(t *testing.T) {
	t.Run("plays a full game", func(t *testing.T) {
		e := NewLocalEngine(agent.NewRandomAgent(1), agent.NewRandomAgent(2))
		result, err := e.Run()
		require.NoError(t, err)

		require.True(t, result.State.IsTerminal(), "Game should be played to the end")
		require.Equal(t, game.PlayerBlack, result.Game.StartingPlayer)
		require.Equal(t, len(result.Moves), result.Game.TotalMoves)
		require.Equal(t, result.State.Score(game.PlayerBlack), result.Game.BlackScore)
		require.Equal(t, -result.Game.BlackScore, result.Game.WhiteScore)
		require.Contains(t, []string{"black", "white", "draw"}, result.Game.Winner)

		for i, move := range result.Moves {
			require.Equal(t, i+1, move.Step)
		}
		require.Equal(t, game.PlayerBlack, result.Moves[0].Player)
		require.Equal(t, game.PlayerWhite, result.Moves[1].Player)
	})

	t.Run("replays the recorded moves", func(t *testing.T) {
		e := NewLocalEngine(agent.NewAlphaBetaAgent(1), agent.NewRandomAgent(5))
		result, err := e.Run()
		require.NoError(t, err)

		state := game.New()
		for _, move := range result.Moves {
			require.Equal(t, state.ToMove(), move.Player)
			state = state.MustApply(move.Move)
		}
		require.Equal(t, result.State, state)
		require.Equal(t, metrics.AlphaBeta, result.Moves[0].Algorithm)
	})

	t.Run("illegal move is an error", func(t *testing.T) {
		cheat := agent.Func(func(game.State) game.Move { return game.NewMove(0, 0) })
		e := NewLocalEngine(cheat, agent.NewRandomAgent(1))
		result, err := e.Run()

		require.ErrorIs(t, err, game.ErrIllegalMove)
		require.Equal(t, game.New(), result.State, "Board should stay as it was before the illegal move")
		require.Empty(t, result.Moves)
	})

	t.Run("needs two agents", func(t *testing.T) {
		require.Panics(t, func() { NewLocalEngine(agent.NewRandomAgent(1), nil) })
	})
}
