package vector

import (
	"fmt"
	"strings"
)

const (
	defaultBits uint32 = 5 // will produce nodes with degree  2 ^ 5 = 32
)

type props struct {
	bits   uint32 // number of bits to use per level
	degree uint32 // degree is always 2 ^ bits
	mask   uint32 // mask is degree - 1, i.e. a bit pattern with trailing 1s of length 'bits'
}

func propsForBits(n uint32) props {
	p := props{bits: n}
	p.degree = 1 << p.bits
	p.mask = p.degree - 1
	return p
}

// init makes the zero value of a vector usable.
func (p props) init() props {
	if p.bits == 0 {
		return propsForBits(defaultBits)
	}
	return p
}

// vnode is a node of the trie. Inner nodes hold children, leaf nodes hold values.
type vnode[T any] struct {
	leaf     bool
	children []*vnode[T]
	leafs    []T
}

func emptyNode[T any](k uint32) *vnode[T] {
	return &vnode[T]{
		children: make([]*vnode[T], int(k)),
	}
}

func newLeaf[T any](tail []T) *vnode[T] {
	l := make([]T, len(tail))
	copy(l, tail)
	return &vnode[T]{leaf: true, leafs: l}
}

func (node *vnode[T]) clone() *vnode[T] {
	n := &vnode[T]{leaf: node.leaf}
	if node.leaf {
		n.leafs = make([]T, len(node.leafs))
		copy(n.leafs, node.leafs)
		return n
	}
	n.children = make([]*vnode[T], len(node.children))
	copy(n.children, node.children)
	return n
}

func cloneTail[T any](tail []T, l int) []T {
	newTail := make([]T, l)
	copy(newTail, tail[:min(l, len(tail))])
	return newTail
}

// newPath wraps node into a chain of inner nodes, each having node's ancestor
// as its leftmost child, until the chain reaches height 'levels'.
func newPath[T any](levels, bits, k uint32, node *vnode[T]) *vnode[T] {
	top := node
	for level := levels; level > 0; level -= bits {
		newTop := emptyNode[T](k)
		newTop.children[0] = top
		top = newTop
	}
	return top
}

func (node vnode[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	if node.leaf {
		for i, l := range node.leafs {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(fmt.Sprintf("%v", l))
		}
	} else {
		for i, c := range node.children {
			if i > 0 {
				b.WriteByte(',')
			}
			if c == nil {
				b.WriteByte('_')
			} else {
				b.WriteString("▪︎")
			}
		}
	}
	b.WriteByte(']')
	return b.String()
}

// ---------------------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.vector: "+msg, msgargs...)
		panic(msg)
	}
}
