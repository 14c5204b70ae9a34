package metrics

import (
	"sync/atomic"
	"time"
)

// RoundMetric summarizes one simulated round.
type RoundMetric struct {
	StartTime    time.Time
	Duration     time.Duration
	Steps        int
	Tricks       int
	IllegalPlays int
}

type Collector interface {
	Start()
	AddStep()
	AddTrick()
	AddIllegalPlay()
	Complete() RoundMetric
}

type collector struct {
	startTime    time.Time
	steps        atomic.Int32
	tricks       atomic.Int32
	illegalPlays atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
}

func (m *collector) AddStep() {
	m.steps.Add(1)
}

func (m *collector) AddTrick() {
	m.tricks.Add(1)
}

func (m *collector) AddIllegalPlay() {
	m.illegalPlays.Add(1)
}

func (m *collector) Complete() RoundMetric {
	return RoundMetric{
		StartTime:    m.startTime,
		Duration:     time.Since(m.startTime),
		Steps:        int(m.steps.Load()),
		Tricks:       int(m.tricks.Load()),
		IllegalPlays: int(m.illegalPlays.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                {}
func (m *dummyCollector) AddStep()              {}
func (m *dummyCollector) AddTrick()             {}
func (m *dummyCollector) AddIllegalPlay()       {}
func (m *dummyCollector) Complete() RoundMetric { return RoundMetric{} }
