package engine

import (
	"time"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var _ Engine = (*LocalEngine)(nil)

type LocalEngine struct {
	State  game.State
	Agents [2]agent.Agent // Indexed black, white
}

// NewLocalEngine seats two agents at a board in the starting position.
func NewLocalEngine(black, white agent.Agent) *LocalEngine {
	if black == nil || white == nil {
		panic("need an agent for each side")
	}
	return &LocalEngine{
		State:  game.New(),
		Agents: [2]agent.Agent{black, white},
	}
}

func (e *LocalEngine) agentFor(p game.Player) agent.Agent {
	if p == game.PlayerWhite {
		return e.Agents[1]
	}
	return e.Agents[0]
}

// Run asks the agent of the side to move for a move until the game is over. An illegal move ends the game with
// an error.
func (e *LocalEngine) Run() (Result, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.ToMove(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("%v is starting", e.State.ToMove())

	step := 1
	for ; !e.State.IsTerminal() && step <= MaxMoves; step++ {
		player := e.State.ToMove()
		move, searchMetric := e.agentFor(player).FindMove(e.State)

		next, err := e.State.Apply(move)
		if err != nil {
			return Result{State: e.State, Moves: moveMetrics}, errors.Wrapf(err, "move %d by %v", step, player)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Move:         move,
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("move %d: %v plays %v", step, player, move)

		e.State = next
	}

	if !e.State.IsTerminal() {
		log.Warn().Msgf("stopped after %d moves without a result", MaxMoves)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.BlackScore = e.State.Score(game.PlayerBlack)
	gameMetric.WhiteScore = e.State.Score(game.PlayerWhite)
	gameMetric.Winner = winnerName(e.State)

	log.Debug().Msgf("game over after %d moves: %s (%d to %d)", gameMetric.TotalMoves, gameMetric.Winner,
		e.State.Count(game.Black), e.State.Count(game.White))

	return Result{
		State: e.State,
		Game:  gameMetric,
		Moves: moveMetrics,
	}, nil
}

func winnerName(state game.State) string {
	winner, ok := state.Winner()
	if !ok {
		return "draw"
	}
	return winner.String()
}
