package cmd

import (
	"fmt"
	"io"

	"github.com/ethpandaops/timekeeper/internal/report"
	"github.com/ethpandaops/timekeeper/internal/workload"
	"github.com/ethpandaops/timekeeper/pkg/timer"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type benchOptions struct {
	timingFlags

	runs        int
	childOutput bool
	table       bool
	metricsAddr string
}

var benchOpts benchOptions

var benchCmd = &cobra.Command{
	Use:   "bench <workload> [args...]",
	Short: "Time repeated invocations of a workload",
	Long: `Invokes a built-in workload N times in sequence and reports the average.
Use --table for the full min/max/median/average/total breakdown.

Examples:
  timekeeper bench -n 10 add 1 2
  timekeeper bench -n 5 --child-output fibonacci 25
  timekeeper bench --table --metrics-addr :9090 sum 1 2 1000000`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("runs") {
			benchOpts.runs = appConfig.Runs
		}

		if !cmd.Flags().Changed("child-output") {
			benchOpts.childOutput = appConfig.ChildOutput
		}

		addr := benchOpts.metricsAddr
		if addr == "" {
			addr = appConfig.MetricsAddr
		}

		return withMetrics(cmd.Context(), addr, func(obs timer.Observer) error {
			return runBench(cmd.OutOrStdout(), &benchOpts, args[0], args[1:], obs)
		})
	},
}

func init() {
	benchOpts.register(benchCmd)
	benchCmd.Flags().IntVarP(&benchOpts.runs, "runs", "n", 10, "number of runs")
	benchCmd.Flags().BoolVar(&benchOpts.childOutput, "child-output", false, "write a line for every run")
	benchCmd.Flags().BoolVar(&benchOpts.table, "table", false, "print a statistics table")
	benchCmd.Flags().StringVar(&benchOpts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	rootCmd.AddCommand(benchCmd)
}

func runBench(tableOut io.Writer, opts *benchOptions, name string, args []string, obs timer.Observer) error {
	fn, err := workload.Bind(name, args)
	if err != nil {
		return err
	}

	settings, closeOutput, err := opts.settings(name)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeOutput(); err != nil {
			Logger.WithError(err).Warn("Failed to close output")
		}
	}()

	settings.Observer = obs

	r, err := timer.NewRepeated(timer.RepeatSettings{
		Settings:    settings,
		ChildOutput: opts.childOutput,
	}, opts.runs, fn)
	if err != nil {
		return fmt.Errorf("benchmarking %s: %w", name, err)
	}

	if err := r.Finish(); err != nil {
		return err
	}

	Logger.WithFields(logrus.Fields{
		"workload": name,
		"runs":     r.Len(),
		"average":  r.AverageTime(),
	}).Debug("Benchmark finished")

	if !opts.table {
		return nil
	}

	return report.NewReporter(Logger, settings.Unit).Statistics(tableOut, settings.Label, r.Statistics())
}
