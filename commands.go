package main

import (
	"os"

	"reversi/config"
	"reversi/engine"
	"reversi/experiments"
	"reversi/experiments/metrics"
	"reversi/searcher/agent"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	cfgPath     string
	metricsFile string
	v           = config.New()

	rootCmd = &cobra.Command{
		Use:   "reversi",
		Short: "Reversi search engines: minimax, negamax, alphabeta and MCTS",
		Long: `Plays Reversi between configurable search agents and runs
tournaments that record every game and move to CSV.`,
		SilenceUsage: true,
	}
	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Play one game between the black and white agents",
		RunE:  runPlay,
	}
	experimentCmd = &cobra.Command{
		Use:   "experiment",
		Short: "Play a match-up, or a predefined suite, and write the records",
		RunE:  runExperiment,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus search metrics to this textfile when done")
	mustBind("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	for _, side := range []string{"black", "white"} {
		rootCmd.PersistentFlags().String(side, "", "Algorithm for "+side+" (random, minimax, negamax, alphabeta, mcts)")
		rootCmd.PersistentFlags().Int(side+"-depth", 0, "Search depth for "+side)
		rootCmd.PersistentFlags().Int(side+"-iterations", 0, "MCTS iterations for "+side)
		rootCmd.PersistentFlags().Uint64(side+"-seed", 0, "Random seed for "+side)
		mustBind(side+".algorithm", rootCmd.PersistentFlags().Lookup(side))
		mustBind(side+".depth", rootCmd.PersistentFlags().Lookup(side+"-depth"))
		mustBind(side+".iterations", rootCmd.PersistentFlags().Lookup(side+"-iterations"))
		mustBind(side+".seed", rootCmd.PersistentFlags().Lookup(side+"-seed"))
	}

	playCmd.Flags().String("dot", "", "Write the final MCTS policy table of each MCTS agent to <dot>.<side>.dot")
	mustBind("dot_file", playCmd.Flags().Lookup("dot"))

	experimentCmd.Flags().Int("games", 0, "Games per match-up")
	experimentCmd.Flags().Bool("alternate", true, "Swap colours every other game")
	experimentCmd.Flags().String("output", "", "Directory for the CSV records")
	experimentCmd.Flags().String("suite", "", "Predefined suite to run instead of black against white (depth, iterations, algorithms)")
	mustBind("games", experimentCmd.Flags().Lookup("games"))
	mustBind("alternate", experimentCmd.Flags().Lookup("alternate"))
	mustBind("output_dir", experimentCmd.Flags().Lookup("output"))
	mustBind("suite", experimentCmd.Flags().Lookup("suite"))

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(experimentCmd)
}

// mustBind ties a flag to a config key. Only flags that were set override the file and environment.
func mustBind(key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

func setup() (*config.Config, *prometheus.Registry, error) {
	cfg, err := config.Setup(v, cfgPath)
	if err != nil {
		return nil, nil, err
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}
	zerolog.SetGlobalLevel(level)
	return cfg, prometheus.NewRegistry(), nil
}

func writeMetrics(registry *prometheus.Registry) error {
	if metricsFile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(metricsFile, registry); err != nil {
		return errors.Wrapf(err, "failed to write metrics to %s", metricsFile)
	}
	log.Info().Msgf("wrote search metrics to %s", metricsFile)
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, registry, err := setup()
	if err != nil {
		return err
	}
	searchMetrics := metrics.NewSearchMetrics(registry)

	black, err := agent.New(cfg.Black, searchMetrics.Collector())
	if err != nil {
		return err
	}
	white, err := agent.New(cfg.White, searchMetrics.Collector())
	if err != nil {
		return err
	}

	log.Info().Msgf("playing black=%+v against white=%+v", cfg.Black, cfg.White)
	result, err := engine.NewLocalEngine(black, white).Run()
	if err != nil {
		return err
	}
	for _, row := range result.State.Rows() {
		log.Info().Msg(row)
	}
	log.Info().Msgf("winner: %s (black %d, white %d) after %d moves in %v",
		result.Game.Winner, result.Game.BlackScore, result.Game.WhiteScore, result.Game.TotalMoves, result.Game.Duration)

	if cfg.DotFile != "" {
		sides := map[string]agent.Agent{"black": black, "white": white}
		for side, a := range sides {
			if err := writeDot(cfg.DotFile+"."+side+".dot", a); err != nil {
				return err
			}
		}
	}
	return writeMetrics(registry)
}

func writeDot(path string, a agent.Agent) error {
	exporter, ok := a.(agent.TreeExporter)
	if !ok {
		return nil
	}
	dot := exporter.ToDot()
	if dot == "" {
		return nil
	}
	if err := os.WriteFile(path, []byte(dot), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	log.Info().Msgf("wrote policy table to %s", path)
	return nil
}

func runExperiment(cmd *cobra.Command, args []string) error {
	cfg, registry, err := setup()
	if err != nil {
		return err
	}
	searchMetrics := metrics.NewSearchMetrics(registry)

	name := cfg.Black.Algorithm + "_vs_" + cfg.White.Algorithm
	matchUps := []experiments.MatchUp{{
		Agent1:    cfg.Black,
		Agent2:    cfg.White,
		Games:     cfg.Games,
		Alternate: cfg.Alternate,
	}}
	if cfg.Suite != "" {
		suite, ok := experiments.Suites[cfg.Suite]
		if !ok {
			return errors.Errorf("unknown suite %q", cfg.Suite)
		}
		name = cfg.Suite
		matchUps = suite(cfg.Games)
	}

	writer, err := metrics.NewWriter(cfg.OutputDir, name)
	if err != nil {
		return err
	}
	tallies, err := experiments.RunExperiment(name, matchUps, writer, searchMetrics.Collector)
	if err != nil {
		return err
	}
	for i, tally := range tallies {
		log.Info().Msgf("matchup %d: agent %d won %d, tied %d, lost %d against agent %d",
			i+1, matchUps[i].Agent1.ID, tally.Wins, tally.Ties, tally.Losses, matchUps[i].Agent2.ID)
	}
	log.Info().Msgf("records written to %s", writer.Dir())
	return writeMetrics(registry)
}
