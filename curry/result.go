package curry

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotCallable is returned when calling a Result which holds a final value.
var ErrNotCallable = errors.New("final value is not callable")

// ErrNotFinal is returned by As for a Result which is still a partial application.
var ErrNotFinal = errors.New("result is a partial application")

// ErrResultType is returned by As if a final value is not of the requested type.
var ErrResultType = errors.New("result has unexpected type")

// Result is the outcome of calling a Partial: either a further partial application
// or the final value returned by the target function.
type Result struct {
	done    bool
	value   any
	partial Partial
}

// IsPartial is true if r is a further partial application.
func (r Result) IsPartial() bool {
	return !r.done
}

// Partial returns the partial application held by r, if any.
func (r Result) Partial() (Partial, bool) {
	return r.partial, !r.done
}

// Value returns the final value held by r, if any. The final value may be nil.
func (r Result) Value() (any, bool) {
	return r.value, r.done
}

// Call supplies more arguments to a partial application held by r.
// Results holding a final value are not callable.
func (r Result) Call(values ...any) (Result, error) {
	if r.done {
		return Result{}, fmt.Errorf("%w: %#v", ErrNotCallable, r.value)
	}
	return r.partial.Call(values...)
}

func (r Result) String() string {
	if r.done {
		return fmt.Sprintf("%v", r.value)
	}
	return r.partial.String()
}

// As returns the final value of r as a T. It is meant to wrap calls directly:
//
//     n, err := curry.As[int](add.Call(1, 2, 3))
//
// err is returned unchanged if non-nil.
func As[T any](r Result, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if !r.done {
		return zero, fmt.Errorf("%w: %s", ErrNotFinal, r.partial)
	}
	if r.value == nil { // a nil result is a valid T for interface, pointer, … types
		switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return zero, nil
		}
	}
	x, ok := r.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %T", ErrResultType, r.value)
	}
	return x, nil
}

// Match prepares pattern matching on a result:
//
//     var p curry.Partial
//     var v any
//     switch m := r.Match(); m {
//     case m.Partial(&p):
//         …
//     case m.Value(&v):
//         …
//     }
//
func (r Result) Match() Matcher {
	return &matcher{r: r}
}

// --- Matching --------------------------------------------------------------

type Matcher interface {
	Partial(*Partial) Matcher
	Value(*any) Matcher
}

type matcher struct {
	r Result
}

func (rm *matcher) Partial(p *Partial) Matcher {
	if !rm.r.done {
		*p = rm.r.partial
		return rm
	}
	return nil
}

func (rm *matcher) Value(v *any) Matcher {
	if rm.r.done {
		*v = rm.r.value
		return rm
	}
	return nil
}
