package metrics

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/ethpandaops/timekeeper/pkg/timer"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return log
}

func TestCollector(t *testing.T) {
	var (
		start = time.Unix(100, 0)
		now   = start
	)

	c := newCollector(quietLogger(), func() time.Time { return now })
	require.NoError(t, c.Start(context.Background()))

	samples := []time.Duration{3, 1, 2}
	c.RecordBenchmark(&BenchmarkMetric{
		Name:   "sum",
		Runs:   3,
		Passed: true,
		Stats:  timer.Statistics{Samples: samples, Total: 6},
	})
	c.RecordBenchmark(&BenchmarkMetric{
		Name:  "broken",
		Error: "boom",
	})

	samples[0] = 99

	now = start.Add(2 * time.Second)

	got := c.GetBenchmarks()
	require.Len(t, got, 2)
	assert.Equal(t, time.Duration(3), got[0].Stats.Samples[0], "recorded samples are copied")

	summary := c.GetSummary()
	assert.Equal(t, SummaryMetric{
		TotalDuration:   2 * time.Second,
		TotalBenchmarks: 2,
		Passed:          1,
		Failed:          1,
		TotalRuns:       3,
		MeasuredTime:    6,
	}, summary)

	require.NoError(t, c.Stop())
}

func TestExporter(t *testing.T) {
	reg := prometheus.NewRegistry()

	e, err := NewExporter(reg)
	require.NoError(t, err)

	e.ObserveMeasurement("fib", timer.Measurement{Elapsed: 2 * time.Millisecond})
	e.ObserveMeasurement("fib", timer.Measurement{Elapsed: 4 * time.Millisecond})
	e.ObserveStatistics("fib", timer.Statistics{
		Min:     2 * time.Millisecond,
		Max:     4 * time.Millisecond,
		Median:  3 * time.Millisecond,
		Average: 3 * time.Millisecond,
		Total:   6 * time.Millisecond,
	})

	assert.InDelta(t, 2, testutil.ToFloat64(e.runs.WithLabelValues("fib")), 0)
	assert.InDelta(t, 0.004, testutil.ToFloat64(e.stats.WithLabelValues("fib", "max")), 1e-12)
	assert.InDelta(t, 0.006, testutil.ToFloat64(e.stats.WithLabelValues("fib", "total")), 1e-12)
	assert.Equal(t, 1, testutil.CollectAndCount(e.measurements))

	_, err = NewExporter(reg)
	require.Error(t, err, "registering twice must fail")
	assert.Contains(t, err.Error(), "registering measurement_duration_seconds")

	var already prometheus.AlreadyRegisteredError
	require.ErrorAs(t, err, &already)
}

func TestExporter_AsObserver(t *testing.T) {
	reg := prometheus.NewRegistry()

	e, err := NewExporter(reg)
	require.NoError(t, err)

	_, err = timer.NewRepeated(timer.RepeatSettings{
		Settings: timer.Settings{Label: "add", Quiet: true, Observer: e},
	}, 4, timer.Value(func() int { return 1 }))
	require.NoError(t, err)

	assert.InDelta(t, 4, testutil.ToFloat64(e.runs.WithLabelValues("add")), 0)
	assert.Equal(t, 5, testutil.CollectAndCount(e.stats))
}

func TestServer(t *testing.T) {
	reg := prometheus.NewRegistry()

	e, err := NewExporter(reg)
	require.NoError(t, err)
	e.ObserveMeasurement("served", timer.Measurement{Elapsed: time.Millisecond})

	srv, err := Listen(quietLogger(), "127.0.0.1:0", reg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- srv.Serve(ctx) }()

	resp, err := http.Get("http://" + srv.Addr() + "/metrics")
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), `timekeeper_measurements_total{label="served"} 1`))

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}
