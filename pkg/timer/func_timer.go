package timer

import (
	"time"

	"github.com/sirupsen/logrus"
)

// FuncTimer times exactly one invocation of a Callable.
//
// The call happens inside NewFuncTimer; Finish renders the output line.
// A FuncTimer is single use and must be handled by pointer.
type FuncTimer struct {
	_ noCopy

	emitter
	start  time.Time
	end    time.Time
	result Result
}

// NewFuncTimer invokes fn once and records how long it took.
//
// If fn fails, its error is returned unchanged and no timer is produced.
// Panics raised by fn are not recovered.
func NewFuncTimer(settings Settings, fn Callable) (*FuncTimer, error) {
	return newFuncTimer(settings, fn, 2)
}

// Time runs fn once, finishes the timer and returns fn's value alongside it.
func Time[R any](settings Settings, fn func() R) (R, *FuncTimer, error) {
	var zero R

	t, err := newFuncTimer(settings, Value(fn), 2)
	if err != nil {
		return zero, nil, err
	}

	if err := t.Finish(); err != nil {
		return zero, t, err
	}

	v, err := As[R](t.result)
	if err != nil {
		return zero, t, err
	}

	return v, t, nil
}

func newFuncTimer(settings Settings, fn Callable, skip int) (*FuncTimer, error) {
	s, err := settings.normalize(skip + 1)
	if err != nil {
		return nil, err
	}

	if fn == nil {
		return nil, ErrBadCallable
	}

	t := &FuncTimer{emitter: newEmitter(s, "timer.func")}

	t.start = s.Clock.Now()

	result, err := fn()
	if err != nil {
		t.log.WithError(err).Debug("timed call failed")
		return nil, err
	}

	t.end = s.Clock.Now()
	t.result = result

	t.log.WithFields(logrus.Fields{
		"elapsed":    t.Elapsed(),
		"has_result": result.Present(),
	}).Debug("timed call completed")

	if s.Observer != nil {
		s.Observer.ObserveMeasurement(s.Label, t.Measurement())
	}

	return t, nil
}

// Finish writes the output line unless the timer is quiet. Only the first
// call writes; later calls return nil.
func (t *FuncTimer) Finish() error {
	return t.emit(t.Elapsed())
}

// Elapsed is the time the call took.
func (t *FuncTimer) Elapsed() time.Duration {
	return elapsedBetween(t.start, t.end)
}

// Nanoseconds is Elapsed as an integer nanosecond count.
func (t *FuncTimer) Nanoseconds() int64 {
	return t.Elapsed().Nanoseconds()
}

// Result is the value the call returned, if any.
func (t *FuncTimer) Result() Result {
	return t.result
}

// Measurement returns the completed timing.
func (t *FuncTimer) Measurement() Measurement {
	return Measurement{Elapsed: t.Elapsed(), Result: t.result}
}

// Line renders the output line without writing it.
func (t *FuncTimer) Line() string {
	return t.line(t.Elapsed())
}
