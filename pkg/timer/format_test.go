package timer_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/ethpandaops/timekeeper/pkg/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAuto(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ns       int64
		expected string
	}{
		{name: "zero", ns: 0, expected: "0 ns"},
		{name: "just under a microsecond", ns: 999, expected: "999 ns"},
		{name: "one microsecond", ns: 1000, expected: "1 us"},
		{name: "fractional microseconds", ns: 1500, expected: "1.5 us"},
		{name: "one millisecond", ns: 1_000_000, expected: "1 ms"},
		{name: "fractional milliseconds", ns: 2_250_000, expected: "2.25 ms"},
		{name: "seconds", ns: 2_500_000_000, expected: "2.5 s"},
		{name: "just under a minute", ns: 59_000_000_000, expected: "59 s"},
		{name: "one minute", ns: 60_000_000_000, expected: "1 m"},
		{name: "ninety seconds", ns: 90_000_000_000, expected: "1.5 m"},
		{name: "one hour", ns: 3_600_000_000_000, expected: "1 h"},
		{name: "far beyond an hour", ns: 360_000_000_000_000, expected: "100 h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, timer.FormatAuto(tt.ns))
		})
	}
}

func TestFormatFixed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ns       int64
		unit     timer.Unit
		expected string
	}{
		{name: "nanoseconds", ns: 42, unit: timer.UnitNanoseconds, expected: "42 ns"},
		{name: "microseconds truncate", ns: 1999, unit: timer.UnitMicroseconds, expected: "1 us"},
		{name: "milliseconds truncate", ns: 1_500_000, unit: timer.UnitMilliseconds, expected: "1 ms"},
		{name: "below a second", ns: 999_999_999, unit: timer.UnitSeconds, expected: "0 s"},
		{name: "minutes", ns: 150_000_000_000, unit: timer.UnitMinutes, expected: "2 m"},
		{name: "hours", ns: 5_400_000_000_000, unit: timer.UnitHours, expected: "1 h"},
		{name: "auto delegates", ns: 1000, unit: timer.UnitAuto, expected: "1 us"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, timer.FormatFixed(tt.ns, tt.unit))
		})
	}
}

func TestFormatFixed_WholeSecondsRoundTrip(t *testing.T) {
	t.Parallel()

	for _, k := range []int64{0, 1, 7, 59, 3600} {
		assert.Equal(t, fmt.Sprintf("%d s", k), timer.FormatFixed(k*1_000_000_000, timer.UnitSeconds))
	}
}

func TestFormat_Duration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1.5 s", timer.Format(1500*time.Millisecond, timer.UnitAuto))
	assert.Equal(t, "1500 ms", timer.Format(1500*time.Millisecond, timer.UnitMilliseconds))
}

func TestParseUnit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected timer.Unit
	}{
		{input: "", expected: timer.UnitAuto},
		{input: "auto", expected: timer.UnitAuto},
		{input: "ns", expected: timer.UnitNanoseconds},
		{input: "us", expected: timer.UnitMicroseconds},
		{input: "µs", expected: timer.UnitMicroseconds},
		{input: "MS", expected: timer.UnitMilliseconds},
		{input: "seconds", expected: timer.UnitSeconds},
		{input: " m ", expected: timer.UnitMinutes},
		{input: "hour", expected: timer.UnitHours},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			u, err := timer.ParseUnit(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, u)
		})
	}

	_, err := timer.ParseUnit("fortnight")
	require.ErrorIs(t, err, timer.ErrUnknownUnit)
}

func TestUnit_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "auto", timer.UnitAuto.String())
	assert.Equal(t, "s", timer.UnitSeconds.String())
	assert.Equal(t, "unknown", timer.Unit(99).String())
	assert.Equal(t, int64(60_000_000_000), timer.UnitMinutes.Nanoseconds())
	assert.Zero(t, timer.UnitAuto.Nanoseconds())
}
