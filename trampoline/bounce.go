package trampoline

// Bounce is the result of a single step of a trampolined computation with state
// type S and result type R. It is either More (continue with a new state) or Done
// (terminal value).
//
// The zero value is More with a zero state.
type Bounce[S, R any] struct {
	done  bool
	state S
	value R
}

// More signals to continue by calling the step function again with state s.
func More[S, R any](s S) Bounce[S, R] {
	return Bounce[S, R]{state: s}
}

// Done signals a terminal value v.
func Done[S, R any](v R) Bounce[S, R] {
	return Bounce[S, R]{done: true, value: v}
}

// IsDone is true for terminal bounces.
func (b Bounce[S, R]) IsDone() bool {
	return b.done
}

// State returns the state to continue with. It is the zero value for terminal bounces.
func (b Bounce[S, R]) State() S {
	return b.state
}

// Value returns the terminal value. It is the zero value for non-terminal bounces.
func (b Bounce[S, R]) Value() R {
	return b.value
}

// Match prepares pattern matching on a bounce:
//
//     var s State
//     var r int
//     switch m := b.Match(); m {
//     case m.More(&s):
//         …
//     case m.Done(&r):
//         …
//     }
//
func (b Bounce[S, R]) Match() Matcher[S, R] {
	return &matcher[S, R]{b: b}
}

// --- Matching --------------------------------------------------------------

type Matcher[S, R any] interface {
	More(*S) Matcher[S, R]
	Done(*R) Matcher[S, R]
}

type matcher[S, R any] struct {
	b Bounce[S, R]
}

func (bm *matcher[S, R]) More(s *S) Matcher[S, R] {
	if !bm.b.done {
		*s = bm.b.state
		return bm
	}
	return nil
}

func (bm *matcher[S, R]) Done(r *R) Matcher[S, R] {
	if bm.b.done {
		*r = bm.b.value
		return bm
	}
	return nil
}
