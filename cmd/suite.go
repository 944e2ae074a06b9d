package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ethpandaops/timekeeper/internal/config"
	"github.com/ethpandaops/timekeeper/internal/metrics"
	"github.com/ethpandaops/timekeeper/internal/report"
	"github.com/ethpandaops/timekeeper/internal/suite"
	"github.com/ethpandaops/timekeeper/internal/workload"
	"github.com/ethpandaops/timekeeper/pkg/timer"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errBenchmarksFailed = errors.New("benchmarks failed")

var (
	suiteMetricsAddr string
	suiteOutput      string
)

var suiteCmd = &cobra.Command{
	Use:   "suite <file.yaml>",
	Short: "Run every benchmark in a suite file",
	Long: `Runs the benchmarks listed in a YAML suite file and prints a summary table.

Suite file format:
  name: arithmetic
  benchmarks:
    - name: sum
      workload: sum
      args: ["1", "2", "1000000"]
      runs: 10
      unit: ms
      child_output: false

Unset runs, unit, template and child_output fall back to the configuration.
A failing benchmark is reported and the remaining ones still run.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := suiteMetricsAddr
		if addr == "" {
			addr = appConfig.MetricsAddr
		}

		return withMetrics(cmd.Context(), addr, func(obs timer.Observer) error {
			return runSuite(cmd, args[0], obs)
		})
	},
}

func init() {
	suiteCmd.Flags().StringVar(&suiteMetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	suiteCmd.Flags().StringVarP(&suiteOutput, "output", "o", "", "where to write timing lines: stdout, stderr or a file path")
	rootCmd.AddCommand(suiteCmd)
}

func runSuite(cmd *cobra.Command, path string, obs timer.Observer) error {
	s, err := suite.NewLoader(Logger, appConfig).Load(path)
	if err != nil {
		return err
	}

	out, closeOutput, err := config.OpenOutput(firstNonEmpty(suiteOutput, appConfig.Output))
	if err != nil {
		return err
	}
	defer func() {
		if err := closeOutput(); err != nil {
			Logger.WithError(err).Warn("Failed to close output")
		}
	}()

	log := Logger.WithFields(logrus.Fields{
		"suite":  s.Name,
		"run_id": uuid.NewString(),
	})

	collector := metrics.NewCollector(log)
	if err := collector.Start(cmd.Context()); err != nil {
		return err
	}
	defer func() {
		if err := collector.Stop(); err != nil {
			log.WithError(err).Warn("Failed to stop collector")
		}
	}()

	log.WithField("benchmarks", len(s.Benchmarks)).Info("Running suite")

	for _, b := range s.Benchmarks {
		collector.RecordBenchmark(runBenchmark(log, b, out, obs))
	}

	summary := collector.GetSummary()

	unit, err := timer.ParseUnit(appConfig.Unit)
	if err != nil {
		return err
	}

	if err := report.NewReporter(Logger, unit).Suite(cmd.OutOrStdout(), s.Name, collector.GetBenchmarks(), summary); err != nil {
		return err
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", errBenchmarksFailed, summary.Failed, summary.TotalBenchmarks)
	}

	return nil
}

func runBenchmark(log logrus.FieldLogger, b *suite.Benchmark, out io.Writer, obs timer.Observer) *metrics.BenchmarkMetric {
	metric := &metrics.BenchmarkMetric{
		Name:      b.Name,
		Workload:  b.Workload,
		Timestamp: time.Now(),
	}

	fail := func(err error) *metrics.BenchmarkMetric {
		log.WithError(err).WithField("benchmark", b.Name).Warn("Benchmark failed")
		metric.Error = err.Error()

		return metric
	}

	fn, err := workload.Bind(b.Workload, b.Args)
	if err != nil {
		return fail(err)
	}

	rs, err := b.Settings()
	if err != nil {
		return fail(err)
	}

	rs.Output = out
	rs.Log = log
	rs.Observer = obs

	r, err := timer.NewRepeated(rs, b.Runs, fn)
	if err != nil {
		return fail(err)
	}

	if err := r.Finish(); err != nil {
		return fail(err)
	}

	metric.Runs = r.Len()
	metric.Stats = r.Statistics()
	metric.Passed = true

	return metric
}
