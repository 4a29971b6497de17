package call

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/npillmayer/fpcall/args"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Target is a Go function prepared for application to argument sets.
// Targets are immutable and may be shared freely.
//
// The zero value is not a valid target; Apply on it returns ErrNotAFunc.
type Target struct {
	fn       reflect.Value
	name     string
	names    []string
	defaults []reflect.Value // indexed by parameter, invalid Value ⇒ no default
	hasValue bool            // fn returns a value
	hasErr   bool            // fn returns an error as its last result
}

// Option is a type to help binding a function at creation time.
type Option func(signature) signature

type signature struct {
	names    []string
	defaults []args.Named
}

// Names is an option to give names to the parameters of a function, from left to
// right. Only named parameters may receive named arguments or defaults.
// It is legal to name only a prefix of the parameters.
func Names(names ...string) Option {
	return func(sig signature) signature {
		sig.names = append([]string(nil), names...)
		return sig
	}
}

// Default is an option to give a default value to a named parameter. The default is
// used whenever the parameter receives neither a positional nor a named argument.
func Default(name string, value any) Option {
	return func(sig signature) signature {
		sig.defaults = append(sig.defaults[:len(sig.defaults):len(sig.defaults)], args.Kw(name, value))
		return sig
	}
}

// Func binds fn, which has to be a Go function. Accepted result lists are (),
// (T), (error) and (T, error).
func Func(fn any, opts ...Option) (Target, error) {
	t := Target{fn: reflect.ValueOf(fn)}
	if fn == nil || t.fn.Kind() != reflect.Func {
		return Target{}, &CallError{Func: fmt.Sprintf("%T", fn), Reason: "cannot bind", Err: ErrNotAFunc}
	}
	if t.fn.IsNil() {
		return Target{}, &CallError{Func: fmt.Sprintf("%T", fn), Reason: "nil function", Err: ErrNotAFunc}
	}
	t.name = funcName(t.fn)
	typ := t.fn.Type()
	switch typ.NumOut() {
	case 0:
	case 1:
		t.hasErr = typ.Out(0) == errorType
		t.hasValue = !t.hasErr
	case 2:
		if typ.Out(1) != errorType {
			return Target{}, t.fail(ErrSignature, "second result must be of type error, is %s", typ.Out(1))
		}
		t.hasValue, t.hasErr = true, true
	default:
		return Target{}, t.fail(ErrSignature, "%d results", typ.NumOut())
	}
	var sig signature
	for _, option := range opts {
		sig = option(sig)
	}
	if len(sig.names) > t.fixed() {
		return Target{}, t.fail(ErrSignature, "%d names for %d parameters", len(sig.names), t.fixed())
	}
	seen := make(map[string]bool, len(sig.names))
	for _, name := range sig.names {
		if name == "" || seen[name] {
			return Target{}, t.fail(ErrSignature, "invalid or duplicate parameter name %q", name)
		}
		seen[name] = true
	}
	t.names = sig.names
	t.defaults = make([]reflect.Value, t.fixed())
	for _, d := range sig.defaults {
		i := t.indexOf(d.Name)
		if i < 0 {
			return Target{}, t.fail(ErrSignature, "default for unknown parameter %q", d.Name)
		}
		v, err := t.convert(d.Value, typ.In(i), d.Name)
		if err != nil {
			return Target{}, err
		}
		t.defaults[i] = v
	}
	tracer().Debugf("bound target %s", t)
	return t, nil
}

// Arity is the number of fixed (non-variadic) parameters of the target.
func (t Target) Arity() int {
	if !t.fn.IsValid() {
		return 0
	}
	return t.fixed()
}

// Variadic is true if the target function is variadic.
func (t Target) Variadic() bool {
	return t.fn.IsValid() && t.fn.Type().IsVariadic()
}

// ResultType is the type of the (non-error) result of the target, or nil if the
// target does not return a value.
func (t Target) ResultType() reflect.Type {
	if !t.hasValue {
		return nil
	}
	return t.fn.Type().Out(0)
}

// ReturnsError is true if the target reports errors as its last result.
func (t Target) ReturnsError() bool {
	return t.hasErr
}

// Name is the name of the function, as known to the Go runtime.
func (t Target) Name() string {
	return t.name
}

// String renders a target like a function declaration, e.g.
//
//     main.makeEmail(user string, domain string, sep string = "@") string
//
func (t Target) String() string {
	if !t.fn.IsValid() {
		return "<invalid target>"
	}
	typ := t.fn.Type()
	var b strings.Builder
	b.WriteString(t.name)
	b.WriteByte('(')
	for i := 0; i < typ.NumIn(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		if i < len(t.names) {
			b.WriteString(t.names[i])
			b.WriteByte(' ')
		}
		if i == t.fixed() {
			b.WriteString("..." + typ.In(i).Elem().String())
			continue
		}
		b.WriteString(typ.In(i).String())
		if t.defaults[i].IsValid() {
			b.WriteString(fmt.Sprintf(" = %#v", t.defaults[i].Interface()))
		}
	}
	b.WriteByte(')')
	switch {
	case t.hasValue && t.hasErr:
		b.WriteString(fmt.Sprintf(" (%s, error)", typ.Out(0)))
	case t.hasValue:
		b.WriteString(" " + typ.Out(0).String())
	case t.hasErr:
		b.WriteString(" error")
	}
	return b.String()
}

// --- Helpers ---------------------------------------------------------------

// fixed is the number of non-variadic parameters.
func (t Target) fixed() int {
	typ := t.fn.Type()
	if typ.IsVariadic() {
		return typ.NumIn() - 1
	}
	return typ.NumIn()
}

func (t Target) indexOf(name string) int {
	for i, n := range t.names {
		if n == name {
			return i
		}
	}
	return -1
}

// paramName is used in error messages.
func (t Target) paramName(i int) string {
	if i < len(t.names) {
		return t.names[i]
	}
	return fmt.Sprintf("#%d", i)
}

func funcName(fn reflect.Value) string {
	if f := runtime.FuncForPC(fn.Pointer()); f != nil {
		return f.Name()
	}
	return fn.Type().String()
}

func nilable(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}
