package tree

import (
	"github.com/pkg/errors"
)

// Rotate moves child into parent's position and parent down one level.
//
// If child is parent's left child, this is a right rotation:
//	      g                g
//	      |                |
//	   -> p                c
//	     / \              / \
//	    c   r    ->      l   p
//	   / \                  / \
//	  l   m                m   r
// If child is parent's right child, the mirror image (a left rotation)
// is performed instead.
//
// Only the links g-c, c-p and p-m change. Keys are never compared, so the
// ordering invariant l <= c <= m <= p <= r holds afterwards only because
// it held before.
//
// If p had no parent, c will have none afterwards; it is up to the owner
// of the tree to update its root reference.
//
// Rotate returns ErrNullReference if either node is nil, and
// ErrInvalidArgument if child is not a direct child of parent.
// Nothing is modified when an error is returned.
func Rotate[T any](child, parent *Node[T]) error {
	if child == nil {
		return errors.Wrap(ErrNullReference, "rotate: child is nil")
	}

	if parent == nil {
		return errors.Wrap(ErrNullReference, "rotate: parent is nil")
	}

	// nothing is written until the pair is known to be valid
	var right bool
	switch child {
	case parent.Left:
		right = true
	case parent.Right:
		right = false
	default:
		return errors.Wrap(ErrInvalidArgument, "rotate: child is not a child of parent")
	}

	g := parent.Parent

	if right {
		m := child.Right
		parent.Left = m
		if m != nil {
			m.Parent = parent
		}
		child.Right = parent
	} else {
		m := child.Left
		parent.Right = m
		if m != nil {
			m.Parent = parent
		}
		child.Left = parent
	}

	parent.Parent = child
	child.Parent = g

	if g != nil {
		switch parent {
		case g.Left:
			g.Left = child
		case g.Right:
			g.Right = child
		default:
			panic("unreachable")
		}
	}

	return nil
}

// RotateLeft rotates a Node to the left and returns
// the Node that now occupies its old position.
// For example, this is the result of calling n.RotateLeft:
//	  -> n            p
//	    / \          / \
//	   m   p   ->   n   q
//	      / \      / \
//	     o   q    m   o
// The right child p is returned from n.RotateLeft.
// If n has no right child, ErrNullReference is returned.
func (n *Node[T]) RotateLeft() (*Node[T], error) {
	if n == nil {
		return nil, errors.Wrap(ErrNullReference, "cannot RotateLeft on nil")
	}

	p := n.Right
	if err := Rotate(p, n); err != nil {
		return nil, errors.Wrap(err, "cannot RotateLeft")
	}

	return p, nil
}

// RotateRight rotates a Node to the right and returns
// the Node that now occupies its old position.
// For example, this is the result of calling n.RotateRight:
//	  -> n            l
//	    / \          / \
//	   l   o   ->   k   n
//	  / \              / \
//	 k   m            m   o
// The left child l is returned from n.RotateRight.
// If n has no left child, ErrNullReference is returned.
func (n *Node[T]) RotateRight() (*Node[T], error) {
	if n == nil {
		return nil, errors.Wrap(ErrNullReference, "cannot RotateRight on nil")
	}

	l := n.Left
	if err := Rotate(l, n); err != nil {
		return nil, errors.Wrap(err, "cannot RotateRight")
	}

	return l, nil
}
