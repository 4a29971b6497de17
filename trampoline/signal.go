package trampoline

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/npillmayer/fpcall/args"
	"github.com/npillmayer/fpcall/call"
)

// ErrNotAStep is returned by Wrap for functions which do not return a Signal.
var ErrNotAStep = errors.New("step function has to return a trampoline.Signal")

// Signal is the result of a step whose state is a dynamic argument set:
// either Continue with new arguments or Return a terminal value.
type Signal[R any] = Bounce[args.Args, R]

// Continue signals to call the step function again with values as its arguments.
// Values of type args.Named are passed as named arguments.
func Continue[R any](values ...any) Signal[R] {
	return More[args.Args, R](args.Of(values...))
}

// Return signals a terminal value v.
func Return[R any](v R) Signal[R] {
	return Done[args.Args](v)
}

// Func is a trampolined function: it takes ordinary arguments and returns the
// terminal value of the computation.
type Func[R any] func(values ...any) (R, error)

// Run calls step with initial arguments values and keeps on calling it with the
// arguments of every Continue, until step returns a terminal value.
func Run[R any](step func(args.Args) Signal[R], values ...any) R {
	return Loop(args.Of(values...), step)
}

// Wrap binds fn as a step function and returns it as a trampolined function.
// fn has to be a Go function with result Signal[R] or (Signal[R], error); opts give
// names and defaults to its parameters, as for call.Func. A function of type
// func(args.Args) Signal[R] receives the argument set as is.
//
// Errors from applying arguments to fn, including arguments passed with Continue,
// as well as errors returned by fn, end the computation and are returned unmodified.
func Wrap[R any](fn any, opts ...call.Option) (Func[R], error) {
	if step, ok := fn.(func(args.Args) Signal[R]); ok {
		return func(values ...any) (R, error) {
			return Run(step, values...), nil
		}, nil
	}
	target, err := call.Func(fn, opts...)
	if err != nil {
		return nil, err
	}
	return WrapTarget[R](target)
}

// WrapTarget is like Wrap for a function already bound by package call.
func WrapTarget[R any](target call.Target) (Func[R], error) {
	if want := reflect.TypeOf(Signal[R]{}); target.ResultType() != want {
		return nil, fmt.Errorf("%w: %s does not return %s", ErrNotAStep, target.Name(), want)
	}
	step := func(a args.Args) (Signal[R], error) {
		v, err := target.Apply(a)
		if err != nil {
			return Signal[R]{}, err
		}
		return v.(Signal[R]), nil
	}
	tracer().Debugf("trampolined %s", target)
	return func(values ...any) (R, error) {
		return LoopErr(args.Of(values...), step)
	}, nil
}
