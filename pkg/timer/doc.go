// Package timer measures how long code takes to run.
//
// Three timers share one output path:
//
//   - FuncTimer runs a Callable once and records the time the call took.
//   - BlockTimer brackets a region the caller delimits with End.
//   - Repeated runs a Callable N times and summarizes the runs.
//
// Every timer renders at most one line through Render using the configured
// Template, written to Settings.Output when Finish (or Show) is called:
//
//	t, err := timer.NewFuncTimer(timer.Settings{Label: "sum"}, timer.Value(func() int {
//	    return add(1, 2)
//	}))
//	if err != nil {
//	    return err
//	}
//	defer t.Finish()
//
// All timers are synchronous and must not be shared between goroutines.
package timer
