package timer_test

import (
	"fmt"
	"os"
	"time"

	"github.com/ethpandaops/timekeeper/pkg/timer"
	"github.com/ethpandaops/timekeeper/pkg/timer/timertest"
)

func ExampleNewRepeated() {
	clock := timertest.NewClock(time.Unix(0, 0))
	clock.SetStep(1500 * time.Microsecond)

	fn, err := timer.Call(func(a, b int) int { return a + b }, 1, 2)
	if err != nil {
		panic(err)
	}

	r, err := timer.NewRepeated(timer.RepeatSettings{
		Settings: timer.Settings{
			Label:    "foo",
			Template: "{label} took {result} on average",
			Output:   os.Stdout,
			Clock:    clock,
		},
	}, 10, fn)
	if err != nil {
		panic(err)
	}
	defer r.Finish()

	first, _ := r.Result(0)
	fmt.Println("result:", first)
	// Output:
	// result: 3
	// foo took 1.5 ms on average
}

func ExampleStartBlock() {
	clock := timertest.NewClock(time.Unix(0, 0))

	b, err := timer.StartBlock(timer.Settings{
		Label:    "load",
		Template: "{label}: {result}",
		Unit:     timer.UnitMilliseconds,
		Output:   os.Stdout,
		Clock:    clock,
	})
	if err != nil {
		panic(err)
	}

	clock.Advance(2500 * time.Microsecond)

	if err := b.EndAndShow(); err != nil {
		panic(err)
	}
	// Output: load: 2 ms
}
