package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// newLogger creates a logger writing to stderr at the given level.
// If verbose is true, the logger is set to DebugLevel regardless of level.
func newLogger(level string, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	if verbose {
		log.SetLevel(logrus.DebugLevel)
		return log
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		// Can't use the logger here since it might not be set up yet
		fmt.Fprintf(os.Stderr, "Invalid LOG_LEVEL '%s', defaulting to 'info'\n", level)
		parsed = logrus.InfoLevel
	}

	log.SetLevel(parsed)

	return log
}
