package timer

import (
	"fmt"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
)

// RepeatSettings configures a repeated timing.
type RepeatSettings struct {
	Settings

	// ChildOutput lets every run write its own line. The summary line is
	// controlled separately by Settings.Quiet.
	ChildOutput bool
}

// Repeated times n sequential invocations of the same Callable and
// summarizes them. Finish reports the average.
type Repeated struct {
	_ noCopy

	emitter
	runs  []Measurement
	stats Statistics
}

// NewRepeated invokes fn n times, one run after another.
//
// The first failing run aborts the batch: its error is returned unchanged
// and no statistics are produced. n must be at least 1.
func NewRepeated(settings RepeatSettings, n int, fn Callable) (*Repeated, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRunCount, n)
	}

	if fn == nil {
		return nil, ErrBadCallable
	}

	s, err := settings.Settings.normalize(2)
	if err != nil {
		return nil, err
	}

	r := &Repeated{
		emitter: newEmitter(s, "timer.repeated"),
		runs:    make([]Measurement, 0, n),
	}

	child := s
	child.Quiet = !settings.ChildOutput

	samples := make([]time.Duration, 0, n)

	for i := 0; i < n; i++ {
		t, err := newFuncTimer(child, fn, 1)
		if err != nil {
			r.log.WithError(err).WithField("run", i).Debug("run failed, aborting batch")
			return nil, err
		}

		if err := t.Finish(); err != nil {
			return nil, err
		}

		r.runs = append(r.runs, t.Measurement())
		samples = append(samples, t.Elapsed())
	}

	r.stats, err = Summarize(samples)
	if err != nil {
		return nil, err
	}

	r.log.WithFields(logrus.Fields{
		"runs":    n,
		"average": r.stats.Average,
		"median":  r.stats.Median,
	}).Debug("repeated timing completed")

	if s.Observer != nil {
		s.Observer.ObserveStatistics(s.Label, r.Statistics())
	}

	return r, nil
}

// Finish writes the summary line, rendered from the average run time, unless
// the timing is quiet. Only the first call writes.
func (r *Repeated) Finish() error {
	return r.emit(r.stats.Average)
}

// Line renders the summary line without writing it.
func (r *Repeated) Line() string {
	return r.line(r.stats.Average)
}

// Statistics returns the batch summary.
func (r *Repeated) Statistics() Statistics {
	stats := r.stats
	stats.Samples = slices.Clone(r.stats.Samples)

	return stats
}

// Samples returns the per-run durations in run order.
func (r *Repeated) Samples() []time.Duration {
	return slices.Clone(r.stats.Samples)
}

// Runs returns the per-run measurements in run order.
func (r *Repeated) Runs() []Measurement {
	return slices.Clone(r.runs)
}

// Len is the batch size.
func (r *Repeated) Len() int {
	return len(r.runs)
}

// MaxTime is the slowest run.
func (r *Repeated) MaxTime() time.Duration { return r.stats.Max }

// MinTime is the fastest run.
func (r *Repeated) MinTime() time.Duration { return r.stats.Min }

// MedianTime is the median run.
func (r *Repeated) MedianTime() time.Duration { return r.stats.Median }

// TotalTime is the sum of all runs.
func (r *Repeated) TotalTime() time.Duration { return r.stats.Total }

// AverageTime is TotalTime divided by the batch size, truncated.
func (r *Repeated) AverageTime() time.Duration { return r.stats.Average }

// Result returns the value produced by run i.
func (r *Repeated) Result(i int) (Result, error) {
	if i < 0 || i >= len(r.runs) {
		return Result{}, fmt.Errorf("%w: index %d, batch size %d", ErrOutOfRange, i, len(r.runs))
	}

	return r.runs[i].Result, nil
}
