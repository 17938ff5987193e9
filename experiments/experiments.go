package experiments

import (
	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// MatchUp pits two agents against each other for a number of games. Agent1 plays black unless Alternate swaps
// colours every other game.
type MatchUp struct {
	Agent1    metrics.AgentConfig
	Agent2    metrics.AgentConfig
	Games     int
	Alternate bool
}

// Tally counts game results from agent1's point of view.
type Tally struct {
	Wins   int
	Ties   int
	Losses int
}

func (t Tally) Games() int { return t.Wins + t.Ties + t.Losses }

// NewCollector supplies a metrics collector for each agent of each game.
type NewCollector func() metrics.Collector

// RunMatchUp plays a single match-up and, when writer is not nil, stores its records.
func RunMatchUp(name string, matchUp MatchUp, writer *metrics.Writer, newCollector NewCollector) (Tally, error) {
	tallies, err := RunExperiment(name, []MatchUp{matchUp}, writer, newCollector)
	if err != nil {
		return Tally{}, err
	}
	return tallies[0], nil
}

// RunExperiment plays every match-up in turn and returns one tally per match-up.
func RunExperiment(name string, matchUps []MatchUp, writer *metrics.Writer, newCollector NewCollector) ([]Tally, error) {
	if newCollector == nil {
		newCollector = metrics.NewCollector
	}

	count := 0
	tallies := make([]Tally, 0, len(matchUps))
	configs := []metrics.AgentConfig{}
	seen := map[int]bool{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		for _, config := range []metrics.AgentConfig{matchUp.Agent1, matchUp.Agent2} {
			if !seen[config.ID] {
				seen[config.ID] = true
				configs = append(configs, config)
			}
		}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp.Agent1, matchUp.Agent2)

		var tally Tally
		for i := 0; i < matchUp.Games; i++ {
			agent1Black := !matchUp.Alternate || i%2 == 0
			result, err := runGame(matchUp.Agent1, matchUp.Agent2, i, agent1Black, newCollector)
			if err != nil {
				return nil, errors.Wrapf(err, "matchup %d game %d", mi+1, i+1)
			}

			count++
			black := matchUp.Agent1.ID
			if !agent1Black {
				black = matchUp.Agent2.ID
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     matchUp.Agent1.ID,
				Agent2:     matchUp.Agent2.ID,
				Black:      black,
				GameMetric: result.Game,
			})
			for _, mm := range result.Moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			agent1 := game.PlayerBlack
			if !agent1Black {
				agent1 = game.PlayerWhite
			}
			switch score := result.State.Score(agent1); {
			case score > 0:
				tally.Wins++
			case score < 0:
				tally.Losses++
			default:
				tally.Ties++
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, result.Game.Winner)
		}
		tallies = append(tallies, tally)
		log.Info().Msgf("completed matchup %d of %d: agent1 won %d, tied %d, lost %d", mi+1, len(matchUps), tally.Wins, tally.Ties, tally.Losses)
	}

	log.Info().Msgf("completed %s experiment", name)

	if writer == nil {
		return tallies, nil
	}
	if err := store(writer, configs, gameRecords, moveRecords); err != nil {
		return tallies, err
	}
	return tallies, nil
}

func store(writer *metrics.Writer, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	err := writer.WriteAgentConfigs(configs)
	if err != nil {
		return errors.Wrap(err, "failed to store agent configs")
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return errors.Wrap(err, "failed to write game records")
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return errors.Wrap(err, "failed to write move records")
	}
	log.Info().Msg("stored move records")
	return nil
}

// runGame plays one game. Seeds are offset by the game index so repeated games differ.
func runGame(config1, config2 metrics.AgentConfig, index int, agent1Black bool, newCollector NewCollector) (engine.Result, error) {
	agent1, err := agent.New(reseed(config1, index), newCollector())
	if err != nil {
		return engine.Result{}, err
	}
	agent2, err := agent.New(reseed(config2, index), newCollector())
	if err != nil {
		return engine.Result{}, err
	}

	black, white := agent1, agent2
	if !agent1Black {
		black, white = agent2, agent1
	}
	return engine.NewLocalEngine(black, white).Run()
}

func reseed(config metrics.AgentConfig, index int) metrics.AgentConfig {
	if config.Seed != 0 {
		config.Seed += uint64(index)
	}
	return config
}
