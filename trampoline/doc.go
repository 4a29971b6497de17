/*
Package trampoline turns tail-recursive functions into loops.

Go does not eliminate tail calls, so a function recursing a hundred thousand
times grows its goroutine stack by a hundred thousand frames. A trampolined
function instead returns a description of its next call, and a driver loop
performs that call:

    fact := func(s state) trampoline.Bounce[state, int] {
        if s.n == 0 {
            return trampoline.Done[state](s.acc)
        }
        return trampoline.More[state, int](state{s.n - 1, s.n * s.acc})
    }
    trampoline.Loop(state{n: 5, acc: 1}, fact)   // 120

Every step returns a Bounce, which is either “more” (continue with a new state)
or “done” (with a terminal value). The tag alone decides; a terminal value may be
anything, including nil or a zero value.

For steps taking ordinary parameters, Wrap binds a Go function whose result is a
Signal, i.e. a Bounce carrying a dynamic argument set (see package args). The
wrapped function is called like the original one and returns the terminal value:

    fact, _ := trampoline.Wrap[int](func(n, acc int) trampoline.Signal[int] {
        if n == 0 {
            return trampoline.Return(acc)
        }
        return trampoline.Continue[int](n-1, n*acc)
    }, call.Names("n", "acc"), call.Default("acc", 1))
    fact(5)   // 120, nil

The driver does not check arguments itself; a Continue which does not fit the
step function surfaces as the call error of package call. The driver does not
detect steps which never return Done, either: like any recursion, termination
is the business of the step function.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package trampoline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fpcall.trampoline'.
func tracer() tracing.Trace {
	return tracing.Select("fpcall.trampoline")
}
