package call

import (
	"reflect"

	"github.com/npillmayer/fpcall/args"
)

// Apply calls the target function with arguments a and returns its result.
//
// Parameters are filled from positional arguments (left to right), then from named
// arguments, then from defaults. Surplus positional arguments are passed to the
// variadic parameter, if any. If the arguments do not fit the target, Apply returns
// a *CallError and the function is not called. Otherwise the function's own result
// and error are returned as they are.
func (t Target) Apply(a args.Args) (any, error) {
	if !t.fn.IsValid() {
		return nil, &CallError{Func: "<invalid target>", Reason: "cannot apply", Err: ErrNotAFunc}
	}
	in, err := t.bind(a)
	if err != nil {
		return nil, err
	}
	out := t.fn.Call(in)
	switch {
	case t.hasValue && t.hasErr:
		return out[0].Interface(), asError(out[1])
	case t.hasValue:
		return out[0].Interface(), nil
	case t.hasErr:
		return nil, asError(out[0])
	}
	return nil, nil
}

// Values is a convenience for t.Apply(args.Of(values...)).
func (t Target) Values(values ...any) (any, error) {
	return t.Apply(args.Of(values...))
}

// bind creates the list of actual parameters for a call.
func (t Target) bind(a args.Args) ([]reflect.Value, error) {
	typ := t.fn.Type()
	fixed := t.fixed()
	if a.NumPositional() > fixed && !typ.IsVariadic() {
		return nil, t.fail(ErrArity, "takes %d positional arguments but %d were given",
			fixed, a.NumPositional())
	}
	slots := make([]any, fixed)
	filled := make([]bool, fixed)
	var extra []any
	for i, v := range a.Positional() {
		if i < fixed {
			slots[i], filled[i] = v, true
			continue
		}
		extra = append(extra, v)
	}
	for _, n := range a.Named() {
		i := t.indexOf(n.Name)
		if i < 0 {
			return nil, t.fail(ErrUnknownName, "%q", n.Name)
		}
		if filled[i] {
			return nil, t.fail(ErrDuplicate, "%q", n.Name)
		}
		slots[i], filled[i] = n.Value, true
	}
	in := make([]reflect.Value, 0, fixed+len(extra))
	for i := 0; i < fixed; i++ {
		if !filled[i] {
			if !t.defaults[i].IsValid() {
				return nil, t.fail(ErrArity, "missing argument %s", t.paramName(i))
			}
			in = append(in, t.defaults[i])
			continue
		}
		v, err := t.convert(slots[i], typ.In(i), t.paramName(i))
		if err != nil {
			return nil, err
		}
		in = append(in, v)
	}
	if len(extra) > 0 {
		elem := typ.In(fixed).Elem()
		for j, x := range extra {
			v, err := t.convert(x, elem, t.paramName(fixed+j))
			if err != nil {
				return nil, err
			}
			in = append(in, v)
		}
	}
	return in, nil
}

// convert boxes value as a reflect.Value assignable to typ.
func (t Target) convert(value any, typ reflect.Type, param string) (reflect.Value, error) {
	if value == nil {
		if nilable(typ) {
			return reflect.Zero(typ), nil
		}
		return reflect.Value{}, t.fail(ErrType, "nil for parameter %s of type %s", param, typ)
	}
	v := reflect.ValueOf(value)
	if !v.Type().AssignableTo(typ) {
		return reflect.Value{}, t.fail(ErrType, "%s for parameter %s of type %s", v.Type(), param, typ)
	}
	return v, nil
}

func asError(v reflect.Value) error {
	if v.IsNil() {
		return nil
	}
	return v.Interface().(error)
}
