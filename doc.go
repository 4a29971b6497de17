/*
Package fpcall is a small collection of call-level functional-programming
mechanisms for Go, which Go does not offer natively.

Sub-packages

- trampoline: run tail-recursive step functions in constant stack space
- curry: partial application of functions, with an argument threshold
- call: apply dynamic argument sets to concrete Go functions
- args: immutable sets of positional and named call arguments
- persistent/vector: the immutable persistent vector arguments are stored in

The trampoline and curry packages do not depend on each other; both meet concrete
Go functions through package call.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fpcall
