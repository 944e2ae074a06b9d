// Package timertest provides a controllable clock for testing timers.
package timertest

import (
	"time"

	"github.com/ethpandaops/timekeeper/pkg/timer"
)

// Clock is a fake timer.Clock. Time only moves when Advance or Set is called,
// or by Step on every Now.
type Clock struct {
	now  time.Time
	step time.Duration
}

// NewClock returns a clock frozen at start.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

// Now returns the current fake instant, then moves it forward by the step.
func (c *Clock) Now() time.Time {
	now := c.now
	c.now = c.now.Add(c.step)

	return now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Set jumps the clock to t.
func (c *Clock) Set(t time.Time) {
	c.now = t
}

// SetStep makes every Now call advance the clock by d.
func (c *Clock) SetStep(d time.Duration) {
	c.step = d
}

var _ timer.Clock = new(Clock)
