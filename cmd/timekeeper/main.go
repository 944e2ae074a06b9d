// Package main is the entry point for the timekeeper application
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ethpandaops/timekeeper/cmd"
)

const (
	envFlag      = "--env"
	envFlagEqual = "--env="
)

func main() {
	envFile, interactive, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !interactive {
		cmd.Execute()
		return
	}

	if err := cmd.RunInteractive(envFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseArgs extracts --env and reports whether args hold nothing else,
// in which case the interactive menu runs instead of the CLI.
func parseArgs(args []string) (envFile string, interactive bool, err error) {
	rest := 0

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == envFlag:
			if i+1 >= len(args) {
				return "", false, fmt.Errorf("%s flag requires a value", envFlag)
			}

			envFile = args[i+1]
			i++
		case strings.HasPrefix(arg, envFlagEqual):
			envFile = arg[len(envFlagEqual):]
		default:
			rest++
		}
	}

	return envFile, rest == 0, nil
}
