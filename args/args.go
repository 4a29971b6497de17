package args

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/npillmayer/fpcall/persistent/vector"
)

// ErrNoSuchArgument is returned by typed accessors if an argument is not present.
var ErrNoSuchArgument = errors.New("no such argument")

// ErrArgumentType is returned by typed accessors if an argument has an unexpected type.
var ErrArgumentType = errors.New("argument has unexpected type")

// Named is a named (keyword) argument.
type Named struct {
	Name  string
	Value any
}

// Kw creates a named argument.
func Kw(name string, value any) Named {
	return Named{Name: name, Value: value}
}

func (n Named) String() string {
	return fmt.Sprintf("%s=%#v", n.Name, n.Value)
}

// Args is an immutable set of call arguments: an ordered sequence of positional
// values and a mapping of names to values. Names are unique; they are kept in
// the order they have first been supplied.
//
// The zero value is an empty argument set.
type Args struct {
	positional vector.Vector[any]
	named      vector.Vector[Named]
}

// Of creates an argument set from values. Values of type Named become named
// arguments, all others positional.
func Of(values ...any) Args {
	return Args{}.With(values...)
}

// With returns a new argument set with values added. Positional values are appended
// after the existing ones. A named value replaces an existing value of the same name
// (last write wins), otherwise it is added.
func (a Args) With(values ...any) Args {
	for _, v := range values {
		if n, ok := v.(Named); ok {
			a.named = a.withNamed(n)
			continue
		}
		a.positional = a.positional.Push(v)
	}
	return a
}

func (a Args) withNamed(n Named) vector.Vector[Named] {
	if i := a.indexOf(n.Name); i >= 0 {
		tracer().Debugf("named argument %q overwritten", n.Name)
		return a.named.Set(i, n)
	}
	return a.named.Push(n)
}

func (a Args) indexOf(name string) int {
	for i := 0; i < a.named.Len(); i++ {
		if a.named.Get(i).Name == name {
			return i
		}
	}
	return -1
}

// Len is the total number of arguments, i.e. positional plus named ones.
func (a Args) Len() int {
	return a.positional.Len() + a.named.Len()
}

// NumPositional is the number of positional arguments.
func (a Args) NumPositional() int {
	return a.positional.Len()
}

// NumNamed is the number of named arguments.
func (a Args) NumNamed() int {
	return a.named.Len()
}

// At returns the positional argument at index i. It panics if i is out of range.
func (a Args) At(i int) any {
	return a.positional.Get(i)
}

// Lookup returns the value of a named argument.
func (a Args) Lookup(name string) (any, bool) {
	if i := a.indexOf(name); i >= 0 {
		return a.named.Get(i).Value, true
	}
	return nil, false
}

// Positional returns a fresh slice of the positional arguments.
func (a Args) Positional() []any {
	return a.positional.Slice()
}

// Named returns the named arguments in first-supplied order.
func (a Args) Named() []Named {
	return a.named.Slice()
}

// Names returns the names of the named arguments in first-supplied order.
func (a Args) Names() []string {
	names := make([]string, 0, a.named.Len())
	a.named.Each(func(_ int, n Named) {
		names = append(names, n.Name)
	})
	return names
}

// NamedValues returns the named arguments as a fresh map.
func (a Args) NamedValues() map[string]any {
	m := make(map[string]any, a.named.Len())
	a.named.Each(func(_ int, n Named) {
		m[n.Name] = n.Value
	})
	return m
}

// Values returns positional arguments followed by named arguments, suitable for
// passing on to With or Of.
func (a Args) Values() []any {
	vals := make([]any, 0, a.Len())
	vals = append(vals, a.Positional()...)
	a.named.Each(func(_ int, n Named) {
		vals = append(vals, n)
	})
	return vals
}

// String renders an argument set as
//
//     args=(1, "x") kwargs={sep: ">>="}
//
// with names sorted alphabetically.
func (a Args) String() string {
	var b strings.Builder
	b.WriteString("args=(")
	a.positional.Each(func(i int, v any) {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%#v", v))
	})
	b.WriteString(") kwargs={")
	named := a.Named()
	sort.Slice(named, func(i, j int) bool { return named[i].Name < named[j].Name })
	for i, n := range named {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%s: %#v", n.Name, n.Value))
	}
	b.WriteString("}")
	return b.String()
}

// --- Typed access ----------------------------------------------------------

// Get returns the positional argument at index i as a T.
func Get[T any](a Args, i int) (T, error) {
	var zero T
	if i < 0 || i >= a.NumPositional() {
		return zero, fmt.Errorf("%w: position %d of %d", ErrNoSuchArgument, i, a.NumPositional())
	}
	return cast[T](a.At(i), fmt.Sprintf("position %d", i))
}

// GetNamed returns the named argument 'name' as a T.
func GetNamed[T any](a Args, name string) (T, error) {
	v, ok := a.Lookup(name)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %q", ErrNoSuchArgument, name)
	}
	return cast[T](v, fmt.Sprintf("name %q", name))
}

func cast[T any](v any, where string) (T, error) {
	var zero T
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if v == nil {
		switch typ.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return zero, nil
		}
		return zero, fmt.Errorf("%w: %s is nil, expected %s", ErrArgumentType, where, typ)
	}
	x, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s is %T, expected %s", ErrArgumentType, where, v, typ)
	}
	return x, nil
}
