package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Score       int // from the searching side's perspective
	Depth       int // ply budget of the search
	Duration    time.Duration
	Nodes       int
	Cutoffs     int
	TableProbes int
	TableHits   int
}

type MoveMetric struct {
	Step int
	Side string
	Move string
	SearchMetric
}

type GameMetric struct {
	Winner     string // game.Status from X's perspective
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// Collector is safe for concurrent use so one instance can be shared by the
// goroutines ranking root moves.
type Collector interface {
	Start(depth int)
	AddNode()
	AddCutoff()
	AddProbe(hit bool)
	Complete() SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     atomic.Int64
	cutoffs   atomic.Int64
	probes    atomic.Int64
	hits      atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes.Store(0)
	m.cutoffs.Store(0)
	m.probes.Store(0)
	m.hits.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddProbe(hit bool) {
	m.probes.Add(1)
	if hit {
		m.hits.Add(1)
	}
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:       m.depth,
		Duration:    time.Since(m.startTime),
		Nodes:       int(m.nodes.Load()),
		Cutoffs:     int(m.cutoffs.Load()),
		TableProbes: int(m.probes.Load()),
		TableHits:   int(m.hits.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)        {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) AddProbe(hit bool)      {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
