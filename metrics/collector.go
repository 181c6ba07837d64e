package metrics

import (
	"sync/atomic"
	"time"
)

type RolloutMetric struct {
	Workers  int
	Games    int
	Plies    int
	Duration time.Duration
}

// PliesPerGame is the average game length, 0 when no game was recorded.
func (m RolloutMetric) PliesPerGame() float64 {
	if m.Games == 0 {
		return 0
	}
	return float64(m.Plies) / float64(m.Games)
}

// Collector records rollout statistics. Implementations are safe for
// concurrent AddGame calls.
type Collector interface {
	Start(workers int)
	AddGame(plies int)
	Complete() RolloutMetric
}

type collector struct {
	workers   int
	startTime time.Time
	games     atomic.Int32
	plies     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(workers int) {
	m.startTime = time.Now()
	m.workers = workers
	m.games.Store(0)
	m.plies.Store(0)
}

func (m *collector) AddGame(plies int) {
	m.games.Add(1)
	m.plies.Add(int64(plies))
}

func (m *collector) Complete() RolloutMetric {
	return RolloutMetric{
		Workers:  m.workers,
		Games:    int(m.games.Load()),
		Plies:    int(m.plies.Load()),
		Duration: time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(workers int)       {}
func (m *dummyCollector) AddGame(plies int)       {}
func (m *dummyCollector) Complete() RolloutMetric { return RolloutMetric{} }
