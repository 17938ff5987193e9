package metrics

import (
	"reversi/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Algorithm    string
	Depth        int
	Iterations   int
	Nodes        int
	Rollouts     int
	TableSize    int
	IsTreeReused bool
	Duration     time.Duration
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Move   game.Move
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         string // "black", "white" or "draw"
	BlackScore     int
	WhiteScore     int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector accumulates the statistics of a single search, from Start to Complete.
type Collector interface {
	Start(algorithm string, depth int)
	SetTreeReused(value bool)
	AddNode()
	AddIteration()
	AddRollout()
	SetTableSize(size int)
	Complete() SearchMetric
}

type collector struct {
	algorithm    string
	depth        int
	startTime    time.Time
	nodes        atomic.Int64
	iterations   atomic.Int32
	rollouts     atomic.Int32
	tableSize    atomic.Int32
	isTreeReused atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters, so one collector can serve every search an agent runs.
func (m *collector) Start(algorithm string, depth int) {
	m.startTime = time.Now()
	m.algorithm = algorithm
	m.depth = depth
	m.nodes.Store(0)
	m.iterations.Store(0)
	m.rollouts.Store(0)
}

func (m *collector) SetTreeReused(value bool) {
	m.isTreeReused.Store(value)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddIteration() {
	m.iterations.Add(1)
}

func (m *collector) AddRollout() {
	m.rollouts.Add(1)
}

func (m *collector) SetTableSize(size int) {
	m.tableSize.Store(int32(size))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm:    m.algorithm,
		Depth:        m.depth,
		Iterations:   int(m.iterations.Load()),
		Nodes:        int(m.nodes.Load()),
		Rollouts:     int(m.rollouts.Load()),
		TableSize:    int(m.tableSize.Load()),
		IsTreeReused: m.isTreeReused.Load(),
		Duration:     time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string, depth int) {}
func (m *dummyCollector) SetTreeReused(value bool)          {}
func (m *dummyCollector) AddNode()                          {}
func (m *dummyCollector) AddIteration()                     {}
func (m *dummyCollector) AddRollout()                       {}
func (m *dummyCollector) SetTableSize(size int)             {}
func (m *dummyCollector) Complete() SearchMetric            { return SearchMetric{} }
