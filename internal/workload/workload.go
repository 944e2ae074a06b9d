// Package workload provides the built-in callables the CLI can time.
package workload

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/ethpandaops/timekeeper/pkg/timer"
)

var (
	// ErrUnknownWorkload is returned when no workload is registered under a name.
	ErrUnknownWorkload = errors.New("unknown workload")
	// ErrInvalidArgs is returned when workload arguments cannot be parsed.
	ErrInvalidArgs = errors.New("invalid workload arguments")
)

// DefaultSumIterations is how many additions the sum workload performs when
// no iteration count is given.
const DefaultSumIterations = 100_000_000

// Workload is a named, argument-driven benchmark body.
type Workload struct {
	Name        string
	Usage       string
	Description string

	// Bind parses args and returns the callable to time.
	Bind func(args []string) (timer.Callable, error)
}

var registry = map[string]Workload{
	"add": {
		Name:        "add",
		Usage:       "add <a> <b>",
		Description: "Adds two integers once",
		Bind:        bindAdd,
	},
	"sum": {
		Name:        "sum",
		Usage:       "sum <a> <b> [iterations]",
		Description: "Accumulates a+b over iterations, returning the running total",
		Bind:        bindSum,
	},
	"fibonacci": {
		Name:        "fibonacci",
		Usage:       "fibonacci <n>",
		Description: "Computes the n-th Fibonacci number recursively",
		Bind:        bindFibonacci,
	},
	"sleep": {
		Name:        "sleep",
		Usage:       "sleep <duration>",
		Description: "Blocks for the given duration (e.g. 25ms)",
		Bind:        bindSleep,
	},
}

// Lookup returns the workload registered under name.
func Lookup(name string) (Workload, error) {
	w, ok := registry[name]
	if !ok {
		return Workload{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownWorkload, name, Names())
	}

	return w, nil
}

// Names returns all workload names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// All returns every workload sorted by name.
func All() []Workload {
	names := Names()
	out := make([]Workload, 0, len(names))

	for _, name := range names {
		out = append(out, registry[name])
	}

	return out
}

// Bind looks up name and binds it to args.
func Bind(name string, args []string) (timer.Callable, error) {
	w, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	fn, err := w.Bind(args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", w.Usage, err)
	}

	return fn, nil
}

// Add returns a + b.
func Add(a, b int) int {
	return a + b
}

// Sum accumulates a+b iterations times and returns the total.
func Sum(a, b, iterations int) int {
	res := 0
	for i := 0; i < iterations; i++ {
		res += a + b
	}

	return res
}

// Fibonacci returns the n-th Fibonacci number, with Fibonacci(0) == 0.
func Fibonacci(n int) int {
	if n < 2 {
		return n
	}

	return Fibonacci(n-1) + Fibonacci(n-2)
}

func bindAdd(args []string) (timer.Callable, error) {
	ints, err := parseInts(args, 2, 2)
	if err != nil {
		return nil, err
	}

	return timer.Call(Add, ints[0], ints[1])
}

func bindSum(args []string) (timer.Callable, error) {
	ints, err := parseInts(args, 2, 3)
	if err != nil {
		return nil, err
	}

	iterations := DefaultSumIterations
	if len(ints) == 3 {
		iterations = ints[2]
	}

	if iterations < 0 {
		return nil, fmt.Errorf("%w: iterations must not be negative", ErrInvalidArgs)
	}

	return timer.Call(Sum, ints[0], ints[1], iterations)
}

func bindFibonacci(args []string) (timer.Callable, error) {
	ints, err := parseInts(args, 1, 1)
	if err != nil {
		return nil, err
	}

	if ints[0] < 0 {
		return nil, fmt.Errorf("%w: n must not be negative", ErrInvalidArgs)
	}

	return timer.Call(Fibonacci, ints[0])
}

func bindSleep(args []string) (timer.Callable, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: expected 1 argument, got %d", ErrInvalidArgs, len(args))
	}

	d, err := time.ParseDuration(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}

	if d < 0 {
		return nil, fmt.Errorf("%w: duration must not be negative", ErrInvalidArgs)
	}

	return timer.Func(func() { time.Sleep(d) }), nil
}

func parseInts(args []string, minArgs, maxArgs int) ([]int, error) {
	if len(args) < minArgs || len(args) > maxArgs {
		if minArgs == maxArgs {
			return nil, fmt.Errorf("%w: expected %d arguments, got %d", ErrInvalidArgs, minArgs, len(args))
		}

		return nil, fmt.Errorf("%w: expected %d to %d arguments, got %d", ErrInvalidArgs, minArgs, maxArgs, len(args))
	}

	out := make([]int, 0, len(args))

	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidArgs, arg)
		}

		out = append(out, v)
	}

	return out, nil
}
