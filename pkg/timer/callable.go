package timer

import (
	"fmt"
	"reflect"
)

// Callable is the unit of work a timer invokes. A non-nil error marks the
// invocation as failed; the timer hands it back to the caller untouched.
type Callable func() (Result, error)

// Func adapts a function without a return value.
func Func(fn func()) Callable {
	return func() (Result, error) {
		fn()
		return Result{}, nil
	}
}

// Value adapts a function returning a single value.
func Value[R any](fn func() R) Callable {
	return func() (Result, error) {
		return newTypedResult(fn(), reflect.TypeFor[R]()), nil
	}
}

// Fallible adapts a function returning a value and an error.
func Fallible[R any](fn func() (R, error)) Callable {
	return func() (Result, error) {
		v, err := fn()
		if err != nil {
			return Result{}, err
		}

		return newTypedResult(v, reflect.TypeFor[R]()), nil
	}
}

var errorType = reflect.TypeFor[error]()

// Call binds fn to args so it can be timed as a Callable.
//
// Argument count and types are checked here rather than at invocation time. A
// trailing error return is treated as failure. A single remaining return value
// becomes the Result; several are stored together as a []any.
func Call(fn any, args ...any) (Callable, error) {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return nil, fmt.Errorf("%w: %T is not a function", ErrBadCallable, fn)
	}

	ft := fv.Type()

	in, err := bindArgs(ft, args)
	if err != nil {
		return nil, err
	}

	outs := ft.NumOut()
	failable := outs > 0 && ft.Out(outs-1) == errorType
	if failable {
		outs--
	}

	return func() (Result, error) {
		out := fv.Call(in)

		if failable {
			if errV := out[outs]; !errV.IsNil() {
				return Result{}, errV.Interface().(error)
			}
		}

		switch outs {
		case 0:
			return Result{}, nil
		case 1:
			return newTypedResult(out[0].Interface(), ft.Out(0)), nil
		default:
			values := make([]any, outs)
			for i := range values {
				values[i] = out[i].Interface()
			}

			return NewResult(values), nil
		}
	}, nil
}

func bindArgs(ft reflect.Type, args []any) ([]reflect.Value, error) {
	fixed := ft.NumIn()
	if ft.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, fmt.Errorf("%w: want at least %d arguments, got %d", ErrBadCallable, fixed, len(args))
		}
	} else if len(args) != fixed {
		return nil, fmt.Errorf("%w: want %d arguments, got %d", ErrBadCallable, fixed, len(args))
	}

	in := make([]reflect.Value, len(args))

	for i, arg := range args {
		var target reflect.Type
		if i < fixed {
			target = ft.In(i)
		} else {
			target = ft.In(fixed).Elem()
		}

		v, err := argValue(arg, target)
		if err != nil {
			return nil, fmt.Errorf("%w: argument %d: %w", ErrBadCallable, i, err)
		}

		in[i] = v
	}

	return in, nil
}

func argValue(arg any, target reflect.Type) (reflect.Value, error) {
	if arg == nil {
		switch target.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(target), nil
		default:
			return reflect.Value{}, fmt.Errorf("nil is not assignable to %s", target)
		}
	}

	v := reflect.ValueOf(arg)
	if !v.Type().AssignableTo(target) {
		return reflect.Value{}, fmt.Errorf("%s is not assignable to %s", v.Type(), target)
	}

	return v, nil
}
