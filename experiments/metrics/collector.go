package metrics

import (
	"time"
)

type SearchMetric struct {
	Iterations    int
	Exploration   float64
	Duration      time.Duration
	Episodes      int
	Expansions    int
	Resimulations int // iterations that re-simulated an already visited leaf
	TreeSize      int
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "" on a draw
	Status         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers statistics about a single search. Searches are
// sequential, so implementations need no synchronisation.
type Collector interface {
	Start(iterations int, exploration float64)
	AddEpisode()
	AddExpansion()
	AddResimulation()
	SetTreeSize(nodes int)
	Complete() SearchMetric
}

type collector struct {
	iterations    int
	exploration   float64
	startTime     time.Time
	episodes      int
	expansions    int
	resimulations int
	treeSize      int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(iterations int, exploration float64) {
	*m = collector{
		iterations:  iterations,
		exploration: exploration,
		startTime:   time.Now(),
	}
}

func (m *collector) AddEpisode() {
	m.episodes++
}

func (m *collector) AddExpansion() {
	m.expansions++
}

func (m *collector) AddResimulation() {
	m.resimulations++
}

func (m *collector) SetTreeSize(nodes int) {
	m.treeSize = nodes
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Iterations:    m.iterations,
		Exploration:   m.exploration,
		Duration:      time.Since(m.startTime),
		Episodes:      m.episodes,
		Expansions:    m.expansions,
		Resimulations: m.resimulations,
		TreeSize:      m.treeSize,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(iterations int, exploration float64) {}
func (m *dummyCollector) AddEpisode()                               {}
func (m *dummyCollector) AddExpansion()                             {}
func (m *dummyCollector) AddResimulation()                          {}
func (m *dummyCollector) SetTreeSize(nodes int)                     {}
func (m *dummyCollector) Complete() SearchMetric                    { return SearchMetric{} }
