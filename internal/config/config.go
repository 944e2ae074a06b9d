// Package config handles configuration loading and management
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ethpandaops/timekeeper/pkg/timer"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	// ErrInvalidRuns is returned when the configured run count is below one.
	ErrInvalidRuns = errors.New("runs must be at least 1")
	// ErrEmptyTemplate is returned when the message template is blank.
	ErrEmptyTemplate = errors.New("template must not be empty")
)

// Config holds the defaults used by every timing command.
type Config struct {
	Unit        string
	Template    string
	Runs        int
	ChildOutput bool
	MetricsAddr string
	Output      string
	LogLevel    string
}

// Load reads configuration from the environment after applying envFile.
// An empty envFile means ".env", which may be absent.
func Load(envFile string) (*Config, error) {
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(keyUnit, DefaultUnit)
	v.SetDefault(keyTemplate, timer.DefaultTemplate)
	v.SetDefault(keyRuns, DefaultRuns)
	v.SetDefault(keyChildOutput, false)
	v.SetDefault(keyMetricsAddr, "")
	v.SetDefault(keyOutput, DefaultOutput)
	v.SetDefault(keyLogLevel, DefaultLogLevel)

	// LOG_LEVEL is shared with other ethpandaops tooling and is not prefixed.
	if err := v.BindEnv(keyLogLevel, "LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("binding LOG_LEVEL: %w", err)
	}

	cfg := &Config{
		Unit:        v.GetString(keyUnit),
		Template:    v.GetString(keyTemplate),
		Runs:        v.GetInt(keyRuns),
		ChildOutput: v.GetBool(keyChildOutput),
		MetricsAddr: v.GetString(keyMetricsAddr),
		Output:      v.GetString(keyOutput),
		LogLevel:    v.GetString(keyLogLevel),
	}

	return cfg, nil
}

func loadEnvFile(file string) error {
	if file == "" {
		file = ".env"
	}

	if err := godotenv.Load(file); err != nil {
		// It's okay if the default file doesn't exist
		if file == ".env" && os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("failed to load env file '%s': %w", file, err)
	}

	return nil
}

// Validate checks that the configuration can drive a timer.
func (c *Config) Validate() error {
	if _, err := c.ParsedUnit(); err != nil {
		return err
	}

	if c.Runs < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidRuns, c.Runs)
	}

	if c.Template == "" {
		return ErrEmptyTemplate
	}

	return nil
}

// ParsedUnit returns the configured formatting unit.
func (c *Config) ParsedUnit() (timer.Unit, error) {
	return timer.ParseUnit(c.Unit)
}

// OpenOutput resolves the OUTPUT setting to a writer. The returned close
// function must be called once the writer is no longer needed.
func (c *Config) OpenOutput() (io.Writer, func() error, error) {
	return OpenOutput(c.Output)
}

// OpenOutput resolves an output name: stdout, stderr, or a file path that is
// created or appended to.
func OpenOutput(name string) (io.Writer, func() error, error) {
	noop := func() error { return nil }

	switch name {
	case "", OutputStdout:
		return os.Stdout, noop, nil
	case OutputStderr:
		return os.Stderr, noop, nil
	}

	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening output %s: %w", name, err)
	}

	return f, f.Close, nil
}

func (c *Config) String() string {
	metricsDisplay := c.MetricsAddr
	if metricsDisplay == "" {
		metricsDisplay = "(disabled)"
	}

	return fmt.Sprintf(`Current Configuration:
======================
Unit:           %s
Template:       %s
Runs:           %d
Child Output:   %t
Metrics Addr:   %s
Output:         %s
Log Level:      %s`,
		c.Unit,
		c.Template,
		c.Runs,
		c.ChildOutput,
		metricsDisplay,
		c.Output,
		c.LogLevel,
	)
}
