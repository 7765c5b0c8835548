// Package tree holds the node type shared by the tree implementations
// in this module, along with ordering helpers and the rotation primitive.
package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is a binary tree node with a back-pointer to its parent.
//
// The links must stay consistent: if A.Left == B then B.Parent == A,
// and the same for Right. Code that edits the fields directly is
// responsible for keeping it that way.
type Node[T any] struct {
	Key                 T
	Left, Right, Parent *Node[T]
}

func NodeOf[T any](k T) *Node[T] {
	return &Node[T]{
		Key: k,
	}
}

// Comparable is implemented by keys that know how to order themselves.
// CompareTo returns a negative number, zero or a positive number when
// the receiver is less than, equal to or greater than the argument.
//
// Keys that are pointers can be mutated by client code after insertion,
// which will silently break the ordering of whatever tree holds them.
type Comparable[T any] interface {
	CompareTo(T) int
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func (o Order) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "<invalid tree.Order>"
	}
}

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}

// OrderOf normalises the result of a three-way comparison function.
func OrderOf(c int) Order {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}

func CompareComparable[T Comparable[T]](l, r T) Order {
	return OrderOf(l.CompareTo(r))
}
