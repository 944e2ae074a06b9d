package timer

import (
	"fmt"
	"strings"
	"time"
)

// Unit selects how elapsed time is rendered.
type Unit int

const (
	// UnitAuto picks the largest unit that keeps the value at or above 1.
	UnitAuto Unit = iota
	// UnitNanoseconds renders whole nanoseconds.
	UnitNanoseconds
	// UnitMicroseconds renders whole microseconds.
	UnitMicroseconds
	// UnitMilliseconds renders whole milliseconds.
	UnitMilliseconds
	// UnitSeconds renders whole seconds.
	UnitSeconds
	// UnitMinutes renders whole minutes.
	UnitMinutes
	// UnitHours renders whole hours.
	UnitHours
)

var unitNames = map[string]Unit{
	"auto":         UnitAuto,
	"":             UnitAuto,
	"ns":           UnitNanoseconds,
	"nanosecond":   UnitNanoseconds,
	"nanoseconds":  UnitNanoseconds,
	"us":           UnitMicroseconds,
	"µs":           UnitMicroseconds,
	"microsecond":  UnitMicroseconds,
	"microseconds": UnitMicroseconds,
	"ms":           UnitMilliseconds,
	"millisecond":  UnitMilliseconds,
	"milliseconds": UnitMilliseconds,
	"s":            UnitSeconds,
	"second":       UnitSeconds,
	"seconds":      UnitSeconds,
	"m":            UnitMinutes,
	"min":          UnitMinutes,
	"minute":       UnitMinutes,
	"minutes":      UnitMinutes,
	"h":            UnitHours,
	"hour":         UnitHours,
	"hours":        UnitHours,
}

// ParseUnit resolves a unit from its suffix ("ms") or name ("milliseconds").
func ParseUnit(s string) (Unit, error) {
	u, ok := unitNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return UnitAuto, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}

	return u, nil
}

// Nanoseconds returns the length of one unit. UnitAuto has no fixed length and returns 0.
func (u Unit) Nanoseconds() int64 {
	switch u {
	case UnitNanoseconds:
		return int64(time.Nanosecond)
	case UnitMicroseconds:
		return int64(time.Microsecond)
	case UnitMilliseconds:
		return int64(time.Millisecond)
	case UnitSeconds:
		return int64(time.Second)
	case UnitMinutes:
		return int64(time.Minute)
	case UnitHours:
		return int64(time.Hour)
	default:
		return 0
	}
}

// Suffix is the text appended after a value rendered in this unit.
func (u Unit) Suffix() string {
	switch u {
	case UnitNanoseconds:
		return "ns"
	case UnitMicroseconds:
		return "us"
	case UnitMilliseconds:
		return "ms"
	case UnitSeconds:
		return "s"
	case UnitMinutes:
		return "m"
	case UnitHours:
		return "h"
	default:
		return ""
	}
}

// String returns the unit suffix, or "auto".
func (u Unit) String() string {
	if u == UnitAuto {
		return "auto"
	}

	if s := u.Suffix(); s != "" {
		return s
	}

	return "unknown"
}
