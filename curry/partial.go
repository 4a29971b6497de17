package curry

import (
	"errors"
	"fmt"

	"github.com/npillmayer/fpcall/args"
	"github.com/npillmayer/fpcall/call"
)

// ErrThreshold is returned for negative thresholds.
var ErrThreshold = errors.New("threshold must not be negative")

// Partial is a partial application of a target function: it holds the arguments
// supplied so far, waiting for their number to reach a threshold.
//
// Partials are immutable values. The zero value is not usable.
type Partial struct {
	threshold int
	target    call.Target
	args      args.Args
}

// Curry returns a function which wraps fn into a partial application with the
// given threshold. opts name parameters of fn and give defaults, as for call.Func.
func Curry(threshold int) func(fn any, opts ...call.Option) (Partial, error) {
	return func(fn any, opts ...call.Option) (Partial, error) {
		return New(threshold, fn, opts...)
	}
}

// New wraps fn into a partial application with no arguments supplied yet.
// The target will be called as soon as at least threshold arguments have been supplied.
func New(threshold int, fn any, opts ...call.Option) (Partial, error) {
	if threshold < 0 {
		return Partial{}, fmt.Errorf("%w: %d", ErrThreshold, threshold)
	}
	target, err := call.Func(fn, opts...)
	if err != nil {
		return Partial{}, err
	}
	return FromTarget(threshold, target)
}

// FromTarget is like New for a function already bound by package call.
func FromTarget(threshold int, target call.Target) (Partial, error) {
	if threshold < 0 {
		return Partial{}, fmt.Errorf("%w: %d", ErrThreshold, threshold)
	}
	return Partial{threshold: threshold, target: target}, nil
}

// Call supplies more arguments. Values of type args.Named are named arguments and
// replace earlier values of the same name.
//
// If the total number of arguments supplied (including values) is still below the
// threshold, Call returns a new partial application holding all of them. Otherwise
// it calls the target function and returns its result. Errors from calling the
// target are returned unmodified; p is never changed.
func (p Partial) Call(values ...any) (Result, error) {
	all := p.args.With(values...)
	if all.Len() < p.threshold {
		tracer().Debugf("%s: %d of %d arguments", p.target.Name(), all.Len(), p.threshold)
		return Result{partial: Partial{threshold: p.threshold, target: p.target, args: all}}, nil
	}
	tracer().Debugf("threshold %d reached, calling %s with %s", p.threshold, p.target.Name(), all)
	v, err := p.target.Apply(all)
	if err != nil {
		return Result{}, err
	}
	return Result{done: true, value: v}, nil
}

// Func returns p as a plain function value.
func (p Partial) Func() func(values ...any) (Result, error) {
	return p.Call
}

// Threshold is the number of arguments which triggers a call of the target.
func (p Partial) Threshold() int {
	return p.threshold
}

// Args returns the arguments supplied so far.
func (p Partial) Args() args.Args {
	return p.args
}

// Missing is the number of arguments still needed to reach the threshold.
func (p Partial) Missing() int {
	return max(0, p.threshold-p.args.Len())
}

// Target returns the function wrapped by p.
func (p Partial) Target() call.Target {
	return p.target
}

func (p Partial) String() string {
	return fmt.Sprintf("Partial(%s, %s)", p.target.Name(), p.args)
}
