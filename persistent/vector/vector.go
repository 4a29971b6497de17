package vector

import (
	"fmt"
	"strings"
)

// Vector is an immutable persistent vector. An empty instance is usable as an empty
// vector, i.e. this is legal:
//
//     v := vector.Vector[int]{}.Push(42)
//
type Vector[T any] struct {
	props
	length int
	shift  uint32 // we do not store the height h(v), but rather bits*h(v)
	root   *vnode[T]
	tail   []T
}

// Immutable constructs a vector with options, if you need any.
func Immutable[T any](opts ...Option) Vector[T] {
	v := Vector[T]{}
	for _, option := range opts {
		v.props = option.config(v.props)
	}
	return v
}

// Option is a type to help initializing vectors at creation time.
type Option struct {
	config func(props) props
}

// BitsPerLevel is an option to indirectly set the degree of the underlying trie for a vector.
// The degree of the trie will be 2^n. Accepted exponents are [1…5]; default is 5, i.e.
// a degree of 32.
//
// Use it like this:
//
//     vec := vector.Immutable[int](vector.BitsPerLevel(2))
//
func BitsPerLevel(n int) Option {
	conf := func(p props) props {
		if n < 1 {
			n = 1
		} else if n > 5 {
			n = 5
		}
		return propsForBits(uint32(n))
	}
	return Option{config: conf}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements in v.
func (v Vector[T]) Len() int {
	return v.length
}

// Last returns the last element of v, if v is non-empty.
func (v Vector[T]) Last() (T, bool) {
	if v.length == 0 {
		var none T
		return none, false
	}
	return v.tail[len(v.tail)-1], true
}

// Get returns the element at position i. Get panics if i is out of range,
// as does indexing a slice.
func (v Vector[T]) Get(i int) T {
	assertThat(i >= 0 && i < v.length, "vector index out of bounds: %d with length %d", i, v.length)
	v.props = v.props.init()
	return v.leafFor(i)[i&int(v.mask)]
}

// Set returns a copy of v with the element at position i replaced by value.
// v itself is left unchanged.
func (v Vector[T]) Set(i int, value T) Vector[T] {
	assertThat(i >= 0 && i < v.length, "vector index out of bounds: %d with length %d", i, v.length)
	v.props = v.props.init()
	if i >= v.tailOffset() {
		newTail := cloneTail(v.tail, len(v.tail))
		newTail[i&int(v.mask)] = value
		return Vector[T]{props: v.props, length: v.length, shift: v.shift, root: v.root, tail: newTail}
	}
	newRoot := v.assoc(v.shift, v.root, i, value)
	return Vector[T]{props: v.props, length: v.length, shift: v.shift, root: newRoot, tail: v.tail}
}

// Push returns a copy of v with value appended. v itself is left unchanged.
func (v Vector[T]) Push(value T) Vector[T] {
	v.props = v.props.init()
	if v.length-v.tailOffset() < int(v.degree) { // just append value to tail
		newTail := cloneTail(v.tail, len(v.tail)+1)
		newTail[len(newTail)-1] = value
		return Vector[T]{props: v.props, length: v.length + 1, shift: v.shift, root: v.root, tail: newTail}
	}
	// tail is full ⇒ have to move tail into trie
	tailNode := newLeaf(v.tail)
	root, shift := v.root, v.shift
	if root == nil { // first overflow of tail ⇒ create an empty root one level above leafs
		root, shift = emptyNode[T](v.degree), v.bits
	}
	if (v.length >> v.bits) > (1 << shift) { // root is completely filled ⇒ add a level
		newRoot := emptyNode[T](v.degree)
		newRoot.children[0] = root
		newRoot.children[1] = newPath(shift, v.bits, v.degree, tailNode)
		shift += v.bits
		tracer().Debugf("vector trie grows to shift=%d at length %d", shift, v.length+1)
		root = newRoot
	} else { // still space in root
		root = v.pushTail(shift, root, tailNode)
	}
	return Vector[T]{props: v.props, length: v.length + 1, shift: shift, root: root, tail: []T{value}}
}

// Each calls f for every element of v, in order.
func (v Vector[T]) Each(f func(int, T)) {
	v.props = v.props.init()
	for i := 0; i < v.length; i += int(v.degree) {
		for j, x := range v.leafFor(i) {
			f(i+j, x)
		}
	}
}

// Slice returns the elements of v as a newly allocated slice.
func (v Vector[T]) Slice() []T {
	s := make([]T, 0, v.length)
	v.Each(func(_ int, x T) {
		s = append(s, x)
	})
	return s
}

func (v Vector[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	v.Each(func(i int, x T) {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", x))
	})
	b.WriteByte(']')
	return b.String()
}

// --- Internals -------------------------------------------------------------

// tailOffset is the index of the first element held in the tail.
func (v Vector[T]) tailOffset() int {
	if v.length < int(v.degree) {
		return 0
	}
	return ((v.length - 1) >> v.bits) << v.bits
}

// leafFor returns the bucket of values which holds index i.
func (v Vector[T]) leafFor(i int) []T {
	if i >= v.tailOffset() {
		return v.tail
	}
	node := v.root
	for level := v.shift; level > 0; level -= v.bits {
		node = node.children[(i>>level)&int(v.mask)]
	}
	assertThat(node.leaf, "inconsistency: expected leaf at bottom of trie")
	return node.leafs
}

// pushTail returns a copy of parent (at height level) with tailNode inserted as the
// rightmost leaf. Recursion depth is bounded by the height of the trie.
func (v Vector[T]) pushTail(level uint32, parent, tailNode *vnode[T]) *vnode[T] {
	subidx := ((v.length - 1) >> level) & int(v.mask)
	cow := parent.clone() // copy-on-write
	var insert *vnode[T]
	if level == v.bits {
		insert = tailNode
	} else if child := parent.children[subidx]; child != nil {
		insert = v.pushTail(level-v.bits, child, tailNode)
	} else {
		insert = newPath(level-v.bits, v.bits, v.degree, tailNode)
	}
	cow.children[subidx] = insert
	return cow
}

// assoc returns a copy of the path from node down to the leaf holding i,
// with the value at i replaced.
func (v Vector[T]) assoc(level uint32, node *vnode[T], i int, value T) *vnode[T] {
	cow := node.clone()
	if level == 0 {
		cow.leafs[i&int(v.mask)] = value
		return cow
	}
	subidx := (i >> level) & int(v.mask)
	cow.children[subidx] = v.assoc(level-v.bits, node.children[subidx], i, value)
	return cow
}
