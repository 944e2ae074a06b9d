package metrics

import (
	"fmt"
	"net/http"

	"github.com/ethpandaops/timekeeper/pkg/timer"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "timekeeper"

// Exporter publishes timer measurements as Prometheus metrics. It is a
// timer.Observer and can be set on timer.Settings.
type Exporter struct {
	measurements *prometheus.HistogramVec
	runs         *prometheus.CounterVec
	stats        *prometheus.GaugeVec
}

// NewExporter creates an exporter and registers its collectors with reg.
func NewExporter(reg prometheus.Registerer) (*Exporter, error) {
	e := &Exporter{
		measurements: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "measurement_duration_seconds",
				Help:      "Elapsed time of every timed invocation",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 10),
			},
			[]string{"label"},
		),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "measurements_total",
				Help:      "Number of completed timed invocations",
			},
			[]string{"label"},
		),
		stats: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "benchmark_seconds",
				Help:      "Aggregate statistics of the latest repeated timing",
			},
			[]string{"label", "stat"},
		),
	}

	collectors := []struct {
		name string
		c    prometheus.Collector
	}{
		{name: "measurement_duration_seconds", c: e.measurements},
		{name: "measurements_total", c: e.runs},
		{name: "benchmark_seconds", c: e.stats},
	}

	for _, col := range collectors {
		if err := reg.Register(col.c); err != nil {
			return nil, fmt.Errorf("registering %s: %w", col.name, err)
		}
	}

	return e, nil
}

// ObserveMeasurement records one invocation.
func (e *Exporter) ObserveMeasurement(label string, m timer.Measurement) {
	e.measurements.WithLabelValues(label).Observe(m.Elapsed.Seconds())
	e.runs.WithLabelValues(label).Inc()
}

// ObserveStatistics records the summary of a repeated timing.
func (e *Exporter) ObserveStatistics(label string, s timer.Statistics) {
	e.stats.WithLabelValues(label, "min").Set(s.Min.Seconds())
	e.stats.WithLabelValues(label, "max").Set(s.Max.Seconds())
	e.stats.WithLabelValues(label, "median").Set(s.Median.Seconds())
	e.stats.WithLabelValues(label, "average").Set(s.Average.Seconds())
	e.stats.WithLabelValues(label, "total").Set(s.Total.Seconds())
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

var _ timer.Observer = (*Exporter)(nil)
