package binary

import (
	"github.com/pkg/errors"
	"go.lepak.sg/rotatree/tree"
	"golang.org/x/exp/slices"
)

var (
	// ErrBrokenLink means a parent and child disagree about
	// their relationship, or the root has a parent.
	ErrBrokenLink = errors.New("broken parent/child link")

	// ErrOutOfOrder means the in-order key sequence is not sorted.
	ErrOutOfOrder = errors.New("keys out of order")
)

// Check walks the whole tree and verifies its invariants:
// the root has no parent, every child points back at its parent,
// and the keys are sorted in-order. It returns nil for a healthy tree.
//
// Check terminates even on corrupted link structures, since a node is
// only descended into after its parent link has been verified.
func (t *Tree[T]) Check() error {
	if t.root == nil {
		return nil
	}

	if t.root.Parent != nil {
		return errors.Wrapf(ErrBrokenLink, "root %v has a parent", t.root.Key)
	}

	var keys []T
	var stack []*tree.Node[T]

	n := t.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			if err := checkChildren(n); err != nil {
				return err
			}
			stack = append(stack, n)
			n = n.Left
		}

		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		keys = append(keys, n.Key)
		n = n.Right
	}

	if !slices.IsSortedFunc(keys, func(l, r T) bool {
		return t.cmp(l, r) == tree.Less
	}) {
		return errors.Wrapf(ErrOutOfOrder, "in-order keys %v", keys)
	}

	return nil
}

func checkChildren[T any](n *tree.Node[T]) error {
	if n.Left != nil && n.Left == n.Right {
		return errors.Wrapf(ErrBrokenLink, "node %v has the same left and right child", n.Key)
	}

	if n.Left != nil && n.Left.Parent != n {
		return errors.Wrapf(ErrBrokenLink, "left child %v of %v does not point back", n.Left.Key, n.Key)
	}

	if n.Right != nil && n.Right.Parent != n {
		return errors.Wrapf(ErrBrokenLink, "right child %v of %v does not point back", n.Right.Key, n.Key)
	}

	return nil
}
