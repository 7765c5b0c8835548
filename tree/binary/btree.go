package binary

import (
	"fmt"
	"math/bits"
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"go.lepak.sg/rotatree/tree"
	"go.lepak.sg/rotatree/tree/iterator"
	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree with parent links. It is safe for
// concurrent reads (searching, iterating, etc) but not for concurrent
// reads and writes (inserting, rotating, clearing). Wrap it in a
// synced.Tree if you need that.
//
// A Tree must be created with New, NewFunc or NewComparable.
//
// This tree implementation does not support removal. It is also not
// self-balancing: Rotate is provided, but deciding when to call it is
// left to the caller.
//
// Invariants:
//   - At any node N in the tree, all node keys in the subtree rooted at N.Left
//     will be less than or equal to N.Key
//   - At any node N in the tree, all node keys in the subtree rooted at N.Right
//     will be greater than or equal to N.Key
//   - The root is the only node without a parent
//   - Duplicates are allowed. A duplicate is always inserted as the left
//     child of the first node it compares equal to, taking over that
//     node's previous left subtree.
type Tree[T any] struct {
	// the tree is rooted here.
	root *tree.Node[T]
	cmp  func(l, r T) tree.Order
}

// New returns an empty tree ordered by the built-in < operator.
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{cmp: tree.Compare[T]}
}

// NewComparable returns an empty tree ordered by T's CompareTo method.
func NewComparable[T tree.Comparable[T]]() *Tree[T] {
	return &Tree[T]{cmp: tree.CompareComparable[T]}
}

// NewFunc returns an empty tree ordered by cmp, which must return
// a negative number, zero or a positive number when l is less than,
// equal to or greater than r. cmp must be a total order.
func NewFunc[T any](cmp func(l, r T) int) *Tree[T] {
	return &Tree[T]{cmp: func(l, r T) tree.Order {
		return tree.OrderOf(cmp(l, r))
	}}
}

// absent reports whether k is a nil interface, pointer, map, slice,
// channel or function. Such keys cannot be stored in a Tree.
func absent[T any](k T) bool {
	v := reflect.ValueOf(any(k))
	if !v.IsValid() {
		return true
	}

	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// Root returns the root node of the tree, or nil if it is empty.
// Together with Find, this is meant for callers that need node
// references for Rotate. Changing the node links directly will break
// the tree.
func (t *Tree[T]) Root() *tree.Node[T] {
	return t.root
}

// Find returns the first node on the search path whose key compares
// equal to k, or nil if there is none.
func (t *Tree[T]) Find(k T) *tree.Node[T] {
	if absent(k) {
		return nil
	}

	n := t.root

	for n != nil {
		switch t.cmp(k, n.Key) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			return n
		default:
			panic("unreachable")
		}
	}

	return nil
}

// Contains searches for k in the tree and returns true if it was found.
// An absent key (see Insert) is never contained.
func (t *Tree[T]) Contains(k T) bool {
	return t.Find(k) != nil
}

// Insert inserts k into the binary tree.
// If k is a nil pointer, interface, map, slice, channel or function,
// Insert returns tree.ErrInvalidArgument and the tree is unchanged.
func (t *Tree[T]) Insert(k T) error {
	if absent(k) {
		return errors.Wrap(tree.ErrInvalidArgument, "cannot insert absent key")
	}

	newnode := tree.NodeOf(k)

	if t.root == nil {
		t.root = newnode
		return nil
	}

	n := t.root

	for {
		switch t.cmp(k, n.Key) {
		case tree.Less:
			if n.Left == nil {
				n.Left = newnode
				newnode.Parent = n
				return nil
			}
			n = n.Left
		case tree.Greater:
			if n.Right == nil {
				n.Right = newnode
				newnode.Parent = n
				return nil
			}
			n = n.Right
		case tree.Equal:
			// splice in between n and its left subtree
			newnode.Left = n.Left
			if n.Left != nil {
				n.Left.Parent = newnode
			}
			n.Left = newnode
			newnode.Parent = n
			return nil
		default:
			panic("unreachable")
		}
	}
}

// Rotate moves child into parent's position, as described by tree.Rotate.
// If parent was the root of the tree, child becomes the new root.
// Both nodes must belong to this tree.
func (t *Tree[T]) Rotate(child, parent *tree.Node[T]) error {
	if err := tree.Rotate(child, parent); err != nil {
		return err
	}

	if child.Parent == nil {
		t.root = child
	}

	return nil
}

// Size returns the number of keys in the tree, counting duplicates.
// It walks the whole tree.
func (t *Tree[T]) Size() int {
	n := 0
	for i := iterator.NewInOrderStack(t.root, 0); i.Next(); {
		n++
	}
	return n
}

// IsEmpty returns true if the tree has no keys.
func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Clear removes every key from the tree.
func (t *Tree[T]) Clear() {
	t.root = nil
}

// Values returns the keys of the tree in order.
func (t *Tree[T]) Values() []T {
	var out []T
	for i := t.InOrderIterator(); i.Next(); {
		out = append(out, i.Item())
	}
	return out
}

// InOrder applies f to each key in the tree in-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) InOrder(f func(k T) bool) {
	for i := iterator.NewInOrderStack(t.root, 0); i.Next(); {
		if !f(i.Item()) {
			return
		}
	}
}

// PreOrder applies f to each key in the tree, visiting
// each node before its left and right subtrees.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) PreOrder(f func(k T) bool) {
	if t.root == nil {
		return
	}

	stack := []*tree.Node[T]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !f(n.Key) {
			return
		}

		// right first so that left is popped first
		if n.Right != nil {
			stack = append(stack, n.Right)
		}
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
	}
}

// InOrderIterator returns an iterator object that yields
// keys from the tree in-order.
func (t *Tree[T]) InOrderIterator() *iterator.InOrder[T] {
	return iterator.NewInOrder(t.root)
}

// ReverseIterator returns an iterator object that yields
// keys from the tree in reverse order, largest first.
func (t *Tree[T]) ReverseIterator() *iterator.InOrderReverse[T] {
	return iterator.NewInOrderReverse(t.root)
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := t.InOrderCoroutine()
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//			break
//		}
//	}
//
// Note: InOrderCoroutine starts a goroutine, which exits when either
// Stop() is called or the iteration is finished.
func (t *Tree[T]) InOrderCoroutine() iterator.CoIterator[T] {
	return iterator.CoIterate[T](t.InOrderIterator())
}

type heightFrame[T any] struct {
	n     *tree.Node[T]
	depth int
}

// Height returns the number of nodes on the longest path from the root
// to a leaf, and the smallest height a tree of the same size could have.
// An empty tree has height 0.
func (t *Tree[T]) Height() (actual, ideal int) {
	if t.root == nil {
		return 0, 0
	}

	size := 0
	stack := []heightFrame[T]{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++

		if f.depth > actual {
			actual = f.depth
		}
		if f.n.Left != nil {
			stack = append(stack, heightFrame[T]{f.n.Left, f.depth + 1})
		}
		if f.n.Right != nil {
			stack = append(stack, heightFrame[T]{f.n.Right, f.depth + 1})
		}
	}

	// floor(log2(size)) + 1
	ideal = bits.Len(uint(size))

	return
}

// Balanced returns true if the tree is as short as it can be.
func (t *Tree[T]) Balanced() bool {
	actual, ideal := t.Height()
	return actual == ideal
}

// String returns a string representation of the tree.
// A complete binary tree with height 2 would look like this:
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func (t *Tree[T]) String() string {
	var sb strings.Builder

	if t.root == nil {
		return ""
	}

	printvisit(&sb, t.root, "", "", true, false)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func printvisit[T any](
	sb *strings.Builder, n *tree.Node[T], prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(fmt.Sprint(n.Key))
	sb.WriteRune('\n')

	if n.Left != nil {
		printvisit(sb, n.Left, prefix, treeLeftBranch, false, n.Right != nil)
	}

	if n.Right != nil {
		printvisit(sb, n.Right, prefix, treeRightBranch, false, false)
	}
}
