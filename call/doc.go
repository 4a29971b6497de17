/*
Package call applies argument sets to Go functions.

This is the boundary where boxed arguments (see package args) meet the concrete
parameter types of a target function. A Target binds a Go function together with
optional parameter names and default values:

    t, err := call.Func(makeEmail, call.Names("user", "domain", "sep"), call.Default("sep", "@"))
    ...
    v, err := t.Apply(args.Of("haskell", args.Kw("domain", "curry.com")))

Apply fills parameters from positional arguments first, then from named
arguments, then from defaults, checks assignability of every value and finally
calls the function. Any mismatch is reported as a *CallError wrapping one of the
sentinel errors of this package. An error returned by the target function itself
is handed back unmodified, as is a panic raised by it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package call

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fpcall.call'.
func tracer() tracing.Trace {
	return tracing.Select("fpcall.call")
}
