package metrics

import (
	"checkers/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Mode       string
	Depth      int
	Goroutines int
	Duration   time.Duration
	Nodes      int
	Leaves     int
	RootValue  int
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Jumps  int // Captures made during the turn
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Result         game.Status
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	HumanPieces    int
	ComputerPieces int
}

type Collector interface {
	Start(mode string, depth, goroutines int)
	AddNode(leaf bool)
	SetRootValue(value int)
	Complete() SearchMetric
}

type collector struct {
	mode       string
	depth      int
	goroutines int
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
	rootValue  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(mode string, depth, goroutines int) {
	m.startTime = time.Now()
	m.mode = mode
	m.depth = depth
	m.goroutines = goroutines
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.rootValue.Store(0)
}

func (m *collector) AddNode(leaf bool) {
	m.nodes.Add(1)
	if leaf {
		m.leaves.Add(1)
	}
}

func (m *collector) SetRootValue(value int) {
	m.rootValue.Store(int64(value))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Mode:       m.mode,
		Depth:      m.depth,
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Leaves:     int(m.leaves.Load()),
		RootValue:  int(m.rootValue.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(mode string, depth, goroutines int) {}
func (m *dummyCollector) AddNode(leaf bool)                        {}
func (m *dummyCollector) SetRootValue(value int)                   {}
func (m *dummyCollector) Complete() SearchMetric                   { return SearchMetric{} }
