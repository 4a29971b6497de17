package trampoline

// Loop calls step with s, then repeatedly with the state of every More it
// returns, until step returns Done. Loop returns the terminal value.
//
// Loop runs in constant stack space, regardless of the number of steps.
// If step never returns Done, Loop does not return.
func Loop[S, R any](s S, step func(S) Bounce[S, R]) R {
	b := step(s)
	n := 1
	for !b.done {
		b = step(b.state)
		n++
	}
	tracer().Debugf("trampoline landed after %d bounces", n)
	return b.value
}

// LoopErr is like Loop for steps which may fail. The first error returned by
// step ends the loop and is returned unmodified.
func LoopErr[S, R any](s S, step func(S) (Bounce[S, R], error)) (R, error) {
	b, err := step(s)
	n := 1
	for err == nil && !b.done {
		b, err = step(b.state)
		n++
	}
	if err != nil {
		tracer().Debugf("trampoline failed at bounce %d: %v", n, err)
		var zero R
		return zero, err
	}
	tracer().Debugf("trampoline landed after %d bounces", n)
	return b.value, nil
}
