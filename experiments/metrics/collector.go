package metrics

import (
	"time"
)

type SearchMetric struct {
	Duration     time.Duration
	Simulations  int
	RolloutMoves int // Moves played across all rollouts
	TreeSize     int // Nodes in the search tree, root included
	RootWinRate  float64
}

type MoveMetric struct {
	Step   int
	Player string // Role of the player on move
	Move   string
	SearchMetric
}

type GameMetric struct {
	Black      string // Agent name
	White      string // Agent name
	Winner     string // Role of the winner
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start()
	AddSimulation()
	AddRolloutMoves(moves int)
	SetTreeSize(nodes int)
	SetRootWinRate(rate float64)
	Complete() SearchMetric
}

// collector is owned by a single search and is not safe for concurrent use.
type collector struct {
	startTime    time.Time
	simulations  int
	rolloutMoves int
	treeSize     int
	rootWinRate  float64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start() {
	*m = collector{startTime: time.Now()}
}

func (m *collector) AddSimulation() {
	m.simulations++
}

func (m *collector) AddRolloutMoves(moves int) {
	m.rolloutMoves += moves
}

func (m *collector) SetTreeSize(nodes int) {
	m.treeSize = nodes
}

func (m *collector) SetRootWinRate(rate float64) {
	m.rootWinRate = rate
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:     time.Since(m.startTime),
		Simulations:  m.simulations,
		RolloutMoves: m.rolloutMoves,
		TreeSize:     m.treeSize,
		RootWinRate:  m.rootWinRate,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                      {}
func (m *dummyCollector) AddSimulation()              {}
func (m *dummyCollector) AddRolloutMoves(moves int)   {}
func (m *dummyCollector) SetTreeSize(nodes int)       {}
func (m *dummyCollector) SetRootWinRate(rate float64) {}
func (m *dummyCollector) Complete() SearchMetric      { return SearchMetric{} }
