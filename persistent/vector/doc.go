/*
Package vector implements an immutable persistent vector, designed for use-cases
similar to Go slices which are appended to from many places at once.

An immutable persistent vector has copy-on-write behaviour: Each “modification” of the vector
(appending or replacement) creates a copy, leaving the original unmodified.
Under the hood, copy-on-write retains most of the memory held by the original, and creates
a new incarnation of parts of the structure only. Thus, most of the structure/memory
is shared between original and copy, transparently to clients.

This is what makes it a good store for accumulated call arguments: two partial
applications grown from a common base share the base's elements, but never see
each other's additions.

Immutable vectors are inherently concurrency-safe.

Implementation

The vector is a bit-partitioned trie of degree 2^bits, plus a tail buffer holding
the last (up to degree) elements. Appends go to the tail; a full tail is pushed
into the trie as a new leaf, growing the trie by one level whenever the root is
completely filled.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fpcall.vector'.
func tracer() tracing.Trace {
	return tracing.Select("fpcall.vector")
}
