/*
Package curry implements partial application with an argument threshold.

Instead of having to provide all arguments at once, they can be provided one or
a few at a time. Once at least `threshold` arguments are provided, the wrapped
function will be called:

    add, _ := curry.New(3, func(a, b, c int) int { return a + b + c })
    r, _ := add.Call(1)          // a Partial, waiting for 2 more arguments
    r, _ = r.Call(2, 3)          // 6

This is not "real" currying, as more than one argument may be supplied per call,
but it is in its spirit. The threshold counts positional plus named arguments
(see package args), so functions with defaulted parameters may be called before
all of their parameters are filled; the defaults are resolved by package call.

Partial applications are immutable. Calling a Partial never changes it, which
makes it usable as the common base of any number of further partial applications.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package curry

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fpcall.curry'.
func tracer() tracing.Trace {
	return tracing.Select("fpcall.curry")
}
