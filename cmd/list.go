package cmd

import (
	"github.com/ethpandaops/timekeeper/internal/report"
	"github.com/ethpandaops/timekeeper/internal/workload"
	"github.com/ethpandaops/timekeeper/pkg/timer"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in workloads",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return report.NewReporter(Logger, timer.UnitAuto).Workloads(cmd.OutOrStdout(), workload.All())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
