package cmd

import (
	"fmt"

	"github.com/ethpandaops/timekeeper/internal/workload"
	"github.com/ethpandaops/timekeeper/pkg/timer"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runFlags timingFlags

var runCmd = &cobra.Command{
	Use:   "run <workload> [args...]",
	Short: "Time a single invocation of a workload",
	Long: `Invokes a built-in workload once and writes one timing line.

Examples:
  timekeeper run sum 1 2
  timekeeper run --unit s sum 1 2
  timekeeper run -t "{label} took {result}" fibonacci 30`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runOnce(&runFlags, args[0], args[1:])
	},
}

func init() {
	runFlags.register(runCmd)
	rootCmd.AddCommand(runCmd)
}

func runOnce(flags *timingFlags, name string, args []string) error {
	fn, err := workload.Bind(name, args)
	if err != nil {
		return err
	}

	settings, closeOutput, err := flags.settings(name)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeOutput(); err != nil {
			Logger.WithError(err).Warn("Failed to close output")
		}
	}()

	t, err := timer.NewFuncTimer(settings, fn)
	if err != nil {
		return fmt.Errorf("timing %s: %w", name, err)
	}

	if err := t.Finish(); err != nil {
		return err
	}

	Logger.WithFields(logrus.Fields{
		"workload": name,
		"elapsed":  t.Elapsed(),
		"result":   t.Result(),
	}).Info("Workload finished")

	return nil
}
