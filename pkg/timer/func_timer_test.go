package timer_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ethpandaops/timekeeper/pkg/timer"
	"github.com/ethpandaops/timekeeper/pkg/timer/timertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestFuncTimer_SumInSeconds(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	fn, err := timer.Call(add, 1, 2)
	require.NoError(t, err)

	tm, err := timer.NewFuncTimer(timer.Settings{
		Label:  "sum",
		Unit:   timer.UnitSeconds,
		Output: &buf,
	}, fn)
	require.NoError(t, err)
	require.NoError(t, tm.Finish())

	line := buf.String()
	assert.True(t, strings.HasSuffix(line, "sum] -> 0 s\n"), line)
	assert.True(t, strings.HasPrefix(line, "[func_timer_test.go:"), line)
	assert.Contains(t, line, " in TestFuncTimer_SumInSeconds -- ")

	v, err := timer.As[int](tm.Result())
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestFuncTimer_FakeClock(t *testing.T) {
	t.Parallel()

	var (
		buf   bytes.Buffer
		clock = timertest.NewClock(time.Unix(0, 0))
	)

	tm, err := timer.NewFuncTimer(timer.Settings{
		Label:    "work",
		Template: "{label}: {result}",
		Output:   &buf,
		Clock:    clock,
	}, timer.Func(func() { clock.Advance(1500 * time.Microsecond) }))
	require.NoError(t, err)

	assert.Equal(t, 1500*time.Microsecond, tm.Elapsed())
	assert.Equal(t, int64(1_500_000), tm.Nanoseconds())
	assert.Equal(t, "work: 1.5 ms", tm.Line())
	assert.False(t, tm.Result().Present())
	assert.Empty(t, buf.String(), "nothing is written before Finish")

	require.NoError(t, tm.Finish())
	require.NoError(t, tm.Finish())
	assert.Equal(t, "work: 1.5 ms\n", buf.String(), "exactly one line")
}

func TestFuncTimer_Quiet(t *testing.T) {
	t.Parallel()

	var (
		buf   bytes.Buffer
		clock = timertest.NewClock(time.Unix(0, 0))
	)

	clock.SetStep(time.Millisecond)

	tm, err := timer.NewFuncTimer(timer.Settings{
		Label:  "quiet",
		Quiet:  true,
		Output: &buf,
		Clock:  clock,
	}, timer.Value(func() int { return 9 }))
	require.NoError(t, err)
	require.NoError(t, tm.Finish())

	assert.Zero(t, buf.Len())
	assert.Equal(t, time.Millisecond, tm.Elapsed())
	assert.Equal(t, 9, tm.Result().Value())
}

func TestFuncTimer_BlockingCallIsNeverUnderreported(t *testing.T) {
	t.Parallel()

	const d = 5 * time.Millisecond

	tm, err := timer.NewFuncTimer(timer.Settings{Label: "sleep", Quiet: true}, timer.Func(func() {
		time.Sleep(d)
	}))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, tm.Elapsed(), d)
}

func TestFuncTimer_PropagatesFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	tm, err := timer.NewFuncTimer(timer.Settings{Label: "fail", Output: &buf}, timer.Fallible(func() (int, error) {
		return 0, errBoom
	}))
	assert.Equal(t, errBoom, err)
	assert.Nil(t, tm)
	assert.Zero(t, buf.Len())
}

func TestFuncTimer_PanicsPropagate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	assert.PanicsWithValue(t, "kaboom", func() {
		_, _ = timer.NewFuncTimer(timer.Settings{Label: "panic", Output: &buf}, timer.Func(func() {
			panic("kaboom")
		}))
	})
	assert.Zero(t, buf.Len())
}

func TestFuncTimer_InvalidSettings(t *testing.T) {
	t.Parallel()

	_, err := timer.NewFuncTimer(timer.Settings{}, timer.Func(func() {}))
	require.ErrorIs(t, err, timer.ErrInvalidSettings)

	_, err = timer.NewFuncTimer(timer.Settings{Label: "u", Unit: timer.Unit(42)}, timer.Func(func() {}))
	require.ErrorIs(t, err, timer.ErrInvalidSettings)

	_, err = timer.NewFuncTimer(timer.Settings{Label: "nil"}, nil)
	require.ErrorIs(t, err, timer.ErrBadCallable)
}

func TestFuncTimer_WriteFailure(t *testing.T) {
	t.Parallel()

	tm, err := timer.NewFuncTimer(timer.Settings{Label: "w", Output: failingWriter{}}, timer.Func(func() {}))
	require.NoError(t, err)

	err = tm.Finish()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestFuncTimer_ExplicitSite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	tm, err := timer.NewFuncTimer(timer.Settings{
		Label:  "site",
		Unit:   timer.UnitNanoseconds,
		Output: &buf,
		Site:   timer.Site{File: "main.cpp", Line: 21, Function: "main"},
		Clock:  timertest.NewClock(time.Unix(0, 0)),
	}, timer.Func(func() {}))
	require.NoError(t, err)
	require.NoError(t, tm.Finish())

	assert.Equal(t, "[main.cpp:21 in main -- site] -> 0 ns\n", buf.String())
}

func TestFuncTimer_NegativeClockIsClamped(t *testing.T) {
	t.Parallel()

	clock := timertest.NewClock(time.Unix(100, 0))

	tm, err := timer.NewFuncTimer(timer.Settings{Label: "back", Quiet: true, Clock: clock}, timer.Func(func() {
		clock.Set(time.Unix(50, 0))
	}))
	require.NoError(t, err)
	assert.Zero(t, tm.Elapsed())
}

func TestTime(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	v, tm, err := timer.Time(timer.Settings{
		Label:    "fib",
		Template: "{function}|{label}",
		Output:   &buf,
	}, func() int { return fib(10) })
	require.NoError(t, err)
	assert.Equal(t, 55, v)
	assert.NotNil(t, tm)
	assert.Equal(t, "TestTime|fib\n", buf.String())
}

func TestHere(t *testing.T) {
	t.Parallel()

	site := timer.Here()
	assert.Equal(t, "func_timer_test.go", site.File)
	assert.Equal(t, "TestHere", site.Function)
	assert.Positive(t, site.Line)
	assert.False(t, site.IsZero())
	assert.True(t, timer.Site{}.IsZero())
}

func fib(n int) int {
	if n <= 1 {
		return n
	}

	return fib(n-1) + fib(n-2)
}
