// Package metrics collects benchmark results and exports them to Prometheus.
package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/ethpandaops/timekeeper/pkg/timer"
	"github.com/sirupsen/logrus"
)

// BenchmarkMetric captures the outcome of one repeated timing.
type BenchmarkMetric struct {
	Name      string
	Workload  string
	Runs      int
	Stats     timer.Statistics
	Passed    bool
	Error     string // empty if passed
	Timestamp time.Time
}

// SummaryMetric provides aggregate figures across every recorded benchmark.
type SummaryMetric struct {
	TotalDuration   time.Duration
	TotalBenchmarks int
	Passed          int
	Failed          int
	TotalRuns       int
	MeasuredTime    time.Duration // sum of every passed benchmark's Total
}

// Collector interface for benchmark result collection
type Collector interface {
	Start(ctx context.Context) error
	Stop() error
	RecordBenchmark(metric *BenchmarkMetric)
	GetBenchmarks() []BenchmarkMetric
	GetSummary() SummaryMetric
}

type collector struct {
	log        logrus.FieldLogger
	now        func() time.Time
	mu         sync.RWMutex
	benchmarks []BenchmarkMetric
	startTime  time.Time
}

// NewCollector creates a new benchmark collector.
func NewCollector(log logrus.FieldLogger) Collector {
	return newCollector(log, time.Now)
}

func newCollector(log logrus.FieldLogger, now func() time.Time) *collector {
	return &collector{
		log:        log.WithField("component", "metrics_collector"),
		now:        now,
		benchmarks: make([]BenchmarkMetric, 0, 16),
	}
}

func (c *collector) Start(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startTime = c.now()

	c.log.Debug("metrics collector started")

	return nil
}

func (c *collector) Stop() error {
	c.log.Debug("metrics collector stopped")

	return nil
}

func (c *collector) RecordBenchmark(metric *BenchmarkMetric) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := *metric
	m.Stats.Samples = append([]time.Duration(nil), metric.Stats.Samples...)
	c.benchmarks = append(c.benchmarks, m)
}

func (c *collector) GetBenchmarks() []BenchmarkMetric {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]BenchmarkMetric, len(c.benchmarks))
	copy(result, c.benchmarks)
	return result
}

func (c *collector) GetSummary() SummaryMetric {
	c.mu.RLock()
	defer c.mu.RUnlock()

	summary := SummaryMetric{
		TotalDuration:   c.now().Sub(c.startTime),
		TotalBenchmarks: len(c.benchmarks),
	}

	for _, b := range c.benchmarks {
		if !b.Passed {
			summary.Failed++
			continue
		}

		summary.Passed++
		summary.TotalRuns += b.Runs
		summary.MeasuredTime += b.Stats.Total
	}

	return summary
}

// Compile-time interface compliance check
var _ Collector = (*collector)(nil)
