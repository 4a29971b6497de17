/*
Package args implements immutable sets of call arguments.

Go has no keyword arguments and no untyped argument tuples. Callables in this
module nevertheless accept an open number of positional and named arguments,
in the way dynamically typed languages do:

    a := args.Of(1, 2, args.Kw("sep", ">>="))

Any value of type Named is a named argument, every other value is positional.
Values are boxed as `any`; their types are checked only at the point where the
arguments are finally applied to a concrete Go function (see package call).

Argument sets are persistent: With returns a new set and leaves the receiver
unchanged, sharing most of its memory. An argument set may therefore be used as
the common base of any number of derived sets.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package args

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fpcall.args'.
func tracer() tracing.Trace {
	return tracing.Select("fpcall.args")
}
