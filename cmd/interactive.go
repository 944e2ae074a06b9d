package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/ethpandaops/timekeeper/internal/report"
	"github.com/ethpandaops/timekeeper/internal/workload"
	"github.com/ethpandaops/timekeeper/pkg/interactive"
	"github.com/ethpandaops/timekeeper/pkg/timer"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch interactive menu mode",
	Long:  `Launches the interactive menu for picking and timing workloads.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runInteractiveMenu()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

// RunInteractive loads configuration from envFile and starts the menu.
func RunInteractive(envFile string) error {
	if err := loadConfig(envFile); err != nil {
		return err
	}

	return runInteractiveMenu()
}

func runInteractiveMenu() error {
	fmt.Println("Timekeeper - Interactive Mode")
	fmt.Println("=============================")
	fmt.Println()

	for {
		options := []interactive.MenuOption{
			{
				Name:        "Run",
				Description: "Time a single invocation of a workload",
				Action: func() error {
					return promptAndTime(false)
				},
			},
			{
				Name:        "Bench",
				Description: "Time repeated invocations and show statistics",
				Action: func() error {
					return promptAndTime(true)
				},
			},
			{
				Name:        "List Workloads",
				Description: "Show the built-in workloads",
				Action: func() error {
					if err := report.NewReporter(Logger, timer.UnitAuto).Workloads(os.Stdout, workload.All()); err != nil {
						fmt.Printf("\n❌ Error: %v\n", err)
					}
					interactive.PauseForEnter()
					return nil
				},
			},
			{
				Name:        "Show Config",
				Description: "Display current environment configuration",
				Action: func() error {
					fmt.Println(appConfig.String())
					interactive.PauseForEnter()
					return nil
				},
			},
		}

		if err := interactive.ShowMainMenu(options); err != nil {
			if errors.Is(err, interactive.ErrExit) {
				fmt.Println("Goodbye!")
				return nil
			}
			return err
		}

		fmt.Println()
	}
}

func promptAndTime(repeated bool) error {
	name, err := interactive.Select("Which workload?", workload.Names())
	if err != nil {
		// Prompt canceled, back to the menu
		return nil
	}

	w, err := workload.Lookup(name)
	if err != nil {
		return err
	}

	args, err := interactive.AskArgs("Arguments:", w.Usage)
	if err != nil {
		return nil
	}

	if !repeated {
		if err := runOnce(&timingFlags{}, name, args); err != nil {
			fmt.Printf("\n❌ Error: %v\n", err)
		}
		interactive.PauseForEnter()
		return nil
	}

	runs, err := interactive.AskRuns(appConfig.Runs)
	if err != nil {
		return nil
	}

	opts := &benchOptions{
		runs:        runs,
		childOutput: interactive.Confirm("Print a line for every run?"),
		table:       true,
	}

	if err := runBench(os.Stdout, opts, name, args, nil); err != nil {
		fmt.Printf("\n❌ Error: %v\n", err)
	}

	interactive.PauseForEnter()
	return nil
}
