// Package cmd contains CLI command definitions
package cmd

import (
	"fmt"
	"os"

	"github.com/ethpandaops/timekeeper/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Logger is the shared logger instance for all commands
	Logger *logrus.Logger

	// appConfig is loaded before any subcommand runs
	appConfig *config.Config

	envFile string
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "timekeeper",
		Short: "Timekeeper - function and block timing tool",
		Long: `Timekeeper measures how long functions take, once or over many runs,
and reports min, max, median, average and total durations.

Run without arguments to launch interactive mode, or use subcommands for direct operations.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return loadConfig(envFile)
		},
	}
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	Logger = newLogger(config.DefaultLogLevel, false)

	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "env file to load (default .env)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// loadConfig reads the configuration and reconfigures Logger from it.
func loadConfig(file string) error {
	cfg, err := config.Load(file)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	appConfig = cfg
	Logger = newLogger(cfg.LogLevel, verbose)

	return nil
}
