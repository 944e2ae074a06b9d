package timer

import "time"

// Clock is the time source timers read their instants from.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the Go runtime clock. Instants carry a monotonic reading,
// so differences are immune to wall-clock adjustments.
type SystemClock struct{}

// Now returns the current instant.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// elapsedBetween never reports a negative duration.
func elapsedBetween(start, end time.Time) time.Duration {
	d := end.Sub(start)
	if d < 0 {
		return 0
	}

	return d
}

var _ Clock = SystemClock{}
