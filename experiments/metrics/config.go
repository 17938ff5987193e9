package metrics

// Algorithm names accepted by AgentConfig.
const (
	Random    = "random"
	MiniMax   = "minimax"
	NegaMax   = "negamax"
	AlphaBeta = "alphabeta"
	MCTS      = "mcts"
)

// AgentConfig describes one contestant of an experiment. Fields that do not apply to Algorithm are ignored.
type AgentConfig struct {
	ID          int     `mapstructure:"id"`
	Algorithm   string  `mapstructure:"algorithm"`
	Depth       int     `mapstructure:"depth"`
	Iterations  int     `mapstructure:"iterations"`
	Exploration float64 `mapstructure:"exploration"`
	Seed        uint64  `mapstructure:"seed"`
	Sample      bool    `mapstructure:"sample"` // MCTS: sample the root policy instead of taking the most visited move
}
