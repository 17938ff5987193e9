package config

import (
	"strings"

	"reversi/experiments/metrics"
	"reversi/meta"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const EnvPrefix = "REVERSI"

type Config struct {
	LogLevel  string              `mapstructure:"log_level"`
	OutputDir string              `mapstructure:"output_dir"`
	Games     int                 `mapstructure:"games"`
	Alternate bool                `mapstructure:"alternate"`
	Suite     string              `mapstructure:"suite"`
	DotFile   string              `mapstructure:"dot_file"`
	Black     metrics.AgentConfig `mapstructure:"black"`
	White     metrics.AgentConfig `mapstructure:"white"`
}

// New returns a viper instance with every key defaulted and REVERSI_* environment overrides enabled, so nested
// keys such as black.depth can be set as REVERSI_BLACK_DEPTH.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("log_level", "info")
	v.SetDefault("output_dir", meta.OutputDir)
	v.SetDefault("games", meta.NumGames)
	v.SetDefault("alternate", true)
	v.SetDefault("suite", "")
	v.SetDefault("dot_file", "")
	setAgentDefaults(v, "black", metrics.AgentConfig{ID: 1, Algorithm: metrics.AlphaBeta, Depth: meta.DefaultDepth})
	setAgentDefaults(v, "white", metrics.AgentConfig{ID: 2, Algorithm: metrics.MCTS, Iterations: meta.DefaultIterations})

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setAgentDefaults(v *viper.Viper, key string, config metrics.AgentConfig) {
	v.SetDefault(key+".id", config.ID)
	v.SetDefault(key+".algorithm", config.Algorithm)
	v.SetDefault(key+".depth", config.Depth)
	v.SetDefault(key+".iterations", config.Iterations)
	v.SetDefault(key+".exploration", meta.DefaultExploration)
	v.SetDefault(key+".seed", config.Seed)
	v.SetDefault(key+".sample", config.Sample)
}

// Setup reads cfgPath, if given, on top of the defaults and environment of v.
func Setup(v *viper.Viper, cfgPath string) (*Config, error) {
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		err := v.ReadInConfig()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config %s", cfgPath)
		}
	}

	var cfg Config
	err := v.Unmarshal(&cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	if cfg.Black.ID == cfg.White.ID {
		return nil, errors.Errorf("black and white agents share id %d", cfg.Black.ID)
	}
	return &cfg, nil
}
