package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/ethpandaops/timekeeper/internal/metrics"
	"github.com/ethpandaops/timekeeper/internal/workload"
	"github.com/ethpandaops/timekeeper/pkg/timer"
	"github.com/sirupsen/logrus"
)

// Reporter writes the tables shown by the CLI.
type Reporter struct {
	renderer Renderer
	color    *ColorHelper
	unit     timer.Unit
}

// NewReporter creates a reporter that formats durations in unit.
func NewReporter(log logrus.FieldLogger, unit timer.Unit) *Reporter {
	return &Reporter{
		renderer: NewRenderer(log),
		color:    NewColorHelper(),
		unit:     unit,
	}
}

// Statistics writes one table row per statistic of a repeated timing.
func (r *Reporter) Statistics(w io.Writer, label string, s timer.Statistics) error {
	if _, err := fmt.Fprintln(w, r.color.Header(label)); err != nil {
		return err
	}

	rows := [][]string{
		{"runs", strconv.Itoa(s.Runs())},
		{"min", r.format(s.Min)},
		{"max", r.format(s.Max)},
		{"median", r.format(s.Median)},
		{"average", r.format(s.Average)},
		{"total", r.format(s.Total)},
		{"spread", r.color.FormatSpread(spread(s))},
	}

	return r.renderer.RenderToWriter(w, []string{"Statistic", "Value"}, rows)
}

// Workloads writes the table of built-in workloads.
func (r *Reporter) Workloads(w io.Writer, workloads []workload.Workload) error {
	rows := make([][]string, 0, len(workloads))
	for _, wl := range workloads {
		rows = append(rows, []string{wl.Name, wl.Usage, wl.Description})
	}

	return r.renderer.RenderToWriter(w, []string{"Workload", "Usage", "Description"}, rows)
}

// Suite writes one row per benchmark followed by the totals.
func (r *Reporter) Suite(w io.Writer, name string, benchmarks []metrics.BenchmarkMetric, summary metrics.SummaryMetric) error {
	if _, err := fmt.Fprintln(w, r.color.Header("Suite: "+name)); err != nil {
		return err
	}

	rows := make([][]string, 0, len(benchmarks))

	for _, b := range benchmarks {
		if !b.Passed {
			rows = append(rows, []string{
				b.Name, b.Workload, r.color.FormatStatus(false),
				"-", "-", "-", "-", "-", "-", r.color.Muted(b.Error),
			})

			continue
		}

		rows = append(rows, []string{
			b.Name,
			b.Workload,
			r.color.FormatStatus(true),
			strconv.Itoa(b.Runs),
			r.format(b.Stats.Min),
			r.format(b.Stats.Median),
			r.format(b.Stats.Average),
			r.format(b.Stats.Max),
			r.format(b.Stats.Total),
			"",
		})
	}

	headers := []string{"Benchmark", "Workload", "Status", "Runs", "Min", "Median", "Average", "Max", "Total", "Error"}
	if err := r.renderer.RenderToWriter(w, headers, rows); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Passed: %s  Runs: %d  Measured: %s  Wall: %s\n",
		r.color.FormatPassed(summary.Passed, summary.TotalBenchmarks),
		summary.TotalRuns,
		r.format(summary.MeasuredTime),
		timer.FormatAuto(summary.TotalDuration.Nanoseconds()),
	)

	return err
}

func (r *Reporter) format(d time.Duration) string {
	return timer.Format(d, r.unit)
}

func spread(s timer.Statistics) float64 {
	if s.Min <= 0 {
		return 1
	}

	return float64(s.Max) / float64(s.Min)
}
