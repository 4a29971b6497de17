package call

import (
	"errors"
	"fmt"
)

// ErrNotAFunc is returned if a target is not a Go function.
var ErrNotAFunc = errors.New("not a function")

// ErrSignature is returned for functions or options this package cannot bind,
// e.g. functions with more than one non-error result.
var ErrSignature = errors.New("unsupported signature")

// ErrArity is returned if there are too many or too few arguments for a target.
var ErrArity = errors.New("wrong number of arguments")

// ErrUnknownName is returned for a named argument which does not name a parameter.
var ErrUnknownName = errors.New("unexpected named argument")

// ErrDuplicate is returned if a parameter receives a positional and a named value.
var ErrDuplicate = errors.New("multiple values for argument")

// ErrType is returned if an argument is not assignable to its parameter.
var ErrType = errors.New("argument type mismatch")

// CallError reports a failed attempt to apply arguments to a target.
// It wraps one of the sentinel errors of this package.
type CallError struct {
	Func   string // name of the target function
	Reason string // human readable detail
	Err    error  // one of ErrArity, ErrUnknownName, …
}

func (e *CallError) Error() string {
	return fmt.Sprintf("call %s: %s: %s", e.Func, e.Err, e.Reason)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

func (t Target) fail(err error, format string, a ...any) error {
	e := &CallError{Func: t.name, Reason: fmt.Sprintf(format, a...), Err: err}
	tracer().Debugf("%s", e)
	return e
}
