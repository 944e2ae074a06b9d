// Package suite loads YAML benchmark suites.
package suite

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/ethpandaops/timekeeper/internal/config"
	"github.com/ethpandaops/timekeeper/internal/workload"
	"github.com/ethpandaops/timekeeper/pkg/timer"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var (
	errSuiteNameRequired     = errors.New("suite name is required")
	errNoBenchmarks          = errors.New("suite has no benchmarks")
	errBenchmarkNameRequired = errors.New("benchmark name is required")
	errWorkloadRequired      = errors.New("benchmark workload is required")
	errDuplicateBenchmark    = errors.New("duplicate benchmark name")
	errInvalidRuns           = errors.New("benchmark runs must be at least 1")
)

// Suite is a named list of benchmarks run back to back.
type Suite struct {
	Name       string       `yaml:"name"`
	Benchmarks []*Benchmark `yaml:"benchmarks"`
}

// Benchmark is one repeated timing of a workload.
type Benchmark struct {
	Name        string   `yaml:"name"`
	Workload    string   `yaml:"workload"`
	Args        []string `yaml:"args"`
	Runs        int      `yaml:"runs,omitempty"`
	Unit        string   `yaml:"unit,omitempty"`
	Template    string   `yaml:"template,omitempty"`
	ChildOutput *bool    `yaml:"child_output,omitempty"`
}

// Loader loads suite files.
type Loader interface {
	Load(path string) (*Suite, error)
	Parse(data []byte) (*Suite, error)
}

type loader struct {
	defaults *config.Config
	log      logrus.FieldLogger
}

// NewLoader creates a loader that fills unset benchmark fields from defaults.
func NewLoader(log logrus.FieldLogger, defaults *config.Config) Loader {
	return &loader{
		defaults: defaults,
		log:      log.WithField("component", "suite_loader"),
	}
}

// Load reads and validates the suite at path.
func (l *loader) Load(path string) (*Suite, error) {
	l.log.WithField("path", path).Debug("loading suite")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suite %s: %w", path, err)
	}

	s, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading suite %s: %w", path, err)
	}

	return s, nil
}

// Parse decodes, defaults and validates a suite document.
func (l *loader) Parse(data []byte) (*Suite, error) {
	var s Suite

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	l.applyDefaults(&s)

	if err := validate(&s); err != nil {
		return nil, err
	}

	l.log.WithFields(logrus.Fields{
		"suite":      s.Name,
		"benchmarks": len(s.Benchmarks),
	}).Debug("suite loaded")

	return &s, nil
}

func (l *loader) applyDefaults(s *Suite) {
	if l.defaults == nil {
		return
	}

	for _, b := range s.Benchmarks {
		if b == nil {
			continue
		}

		if b.Runs == 0 {
			b.Runs = l.defaults.Runs
		}

		if b.Unit == "" {
			b.Unit = l.defaults.Unit
		}

		if b.Template == "" {
			b.Template = l.defaults.Template
		}

		if b.ChildOutput == nil {
			childOutput := l.defaults.ChildOutput
			b.ChildOutput = &childOutput
		}
	}
}

func validate(s *Suite) error {
	if s.Name == "" {
		return errSuiteNameRequired
	}

	if len(s.Benchmarks) == 0 {
		return errNoBenchmarks
	}

	seen := make(map[string]struct{}, len(s.Benchmarks))

	for i, b := range s.Benchmarks {
		if b == nil || b.Name == "" {
			return fmt.Errorf("benchmark %d: %w", i, errBenchmarkNameRequired)
		}

		if _, ok := seen[b.Name]; ok {
			return fmt.Errorf("%w: %s", errDuplicateBenchmark, b.Name)
		}

		seen[b.Name] = struct{}{}

		if b.Workload == "" {
			return fmt.Errorf("benchmark %s: %w", b.Name, errWorkloadRequired)
		}

		if _, err := workload.Lookup(b.Workload); err != nil {
			return fmt.Errorf("benchmark %s: %w", b.Name, err)
		}

		if b.Runs < 1 {
			return fmt.Errorf("benchmark %s: %w", b.Name, errInvalidRuns)
		}

		if b.Unit != "" {
			if _, err := timer.ParseUnit(b.Unit); err != nil {
				return fmt.Errorf("benchmark %s: %w", b.Name, err)
			}
		}
	}

	return nil
}

// Settings builds the repeat settings for b.
func (b *Benchmark) Settings() (timer.RepeatSettings, error) {
	unit := timer.UnitAuto

	if b.Unit != "" {
		u, err := timer.ParseUnit(b.Unit)
		if err != nil {
			return timer.RepeatSettings{}, err
		}

		unit = u
	}

	return timer.RepeatSettings{
		Settings: timer.Settings{
			Label:    b.Name,
			Template: b.Template,
			Unit:     unit,
		},
		ChildOutput: b.ChildOutput != nil && *b.ChildOutput,
	}, nil
}
