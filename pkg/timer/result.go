package timer

import (
	"fmt"
	"reflect"
	"time"
)

// Result holds the value a timed callable returned, if any.
type Result struct {
	value   any
	present bool

	// typ is the callable's declared return type, when known. It lets a nil
	// interface value be extracted as that type.
	typ reflect.Type
}

// NewResult boxes v as a present result.
func NewResult(v any) Result {
	return Result{value: v, present: true}
}

func newTypedResult(v any, typ reflect.Type) Result {
	return Result{value: v, present: true, typ: typ}
}

// Present reports whether a value was stored.
func (r Result) Present() bool {
	return r.present
}

// Value returns the stored value, or nil when nothing was stored.
func (r Result) Value() any {
	return r.value
}

func (r Result) String() string {
	if !r.present {
		return "<none>"
	}

	return fmt.Sprint(r.value)
}

// As extracts the stored value as T. A nil stored from an interface return
// type extracts as the zero T when that type is assignable to T.
func As[T any](r Result) (T, error) {
	var zero T
	if !r.present {
		return zero, ErrNoResult
	}

	want := reflect.TypeFor[T]()

	if r.value == nil && r.typ != nil && r.typ.AssignableTo(want) {
		return zero, nil
	}

	v, ok := r.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: stored %T, requested %s", ErrTypeMismatch, r.value, want)
	}

	return v, nil
}

// Measurement is one completed timing.
type Measurement struct {
	Elapsed time.Duration
	Result  Result
}
