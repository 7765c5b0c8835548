package iterator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/rotatree/tree"
)

func newCompleteTree_2Tall() *tree.Node[int] {
	t := &tree.Node[int]{
		Left: &tree.Node[int]{
			Left: &tree.Node[int]{
				Key: 1,
			},
			Key: 2,
			Right: &tree.Node[int]{
				Key: 3,
			},
		},
		Key: 4,
		Right: &tree.Node[int]{
			Left: &tree.Node[int]{
				Key: 5,
			},
			Key: 6,
			Right: &tree.Node[int]{
				Key: 7,
			},
		},
	}

	t.Left.Left.Parent = t.Left
	t.Left.Right.Parent = t.Left
	t.Left.Parent = t

	t.Right.Left.Parent = t.Right
	t.Right.Right.Parent = t.Right
	t.Right.Parent = t

	return t
}

// newDogleg builds
//	      8
//	     / \
//	    5   9
//	   / \
//	  1   7
//	     /
//	    6
func newDogleg() *tree.Node[int] {
	t := &tree.Node[int]{
		Left: &tree.Node[int]{
			Left: &tree.Node[int]{
				Key: 1,
			},
			Key: 5,
			Right: &tree.Node[int]{
				Left: &tree.Node[int]{
					Key: 6,
				},
				Key: 7,
			},
		},
		Key: 8,
		Right: &tree.Node[int]{
			Key: 9,
		},
	}

	t.Left.Parent = t
	t.Right.Parent = t
	t.Left.Left.Parent = t.Left
	t.Left.Right.Parent = t.Left
	t.Left.Right.Left.Parent = t.Left.Right

	return t
}

// newChain builds a right-leaning chain 1 -> 2 -> ... -> n,
// the shape produced by inserting sorted keys.
func newChain(n int) *tree.Node[int] {
	var root, last *tree.Node[int]
	for k := 1; k <= n; k++ {
		node := tree.NodeOf(k)
		if last == nil {
			root = node
		} else {
			last.Right = node
			node.Parent = last
		}
		last = node
	}
	return root
}

// newDuplicates builds 3 with a duplicate 3 as its left child,
// the shape produced by inserting 3, 3, 1.
func newDuplicates() *tree.Node[int] {
	t := tree.NodeOf(3)
	t.Left = tree.NodeOf(3)
	t.Left.Parent = t
	t.Left.Left = tree.NodeOf(1)
	t.Left.Left.Parent = t.Left
	return t
}

func collect(i Iterator[int]) []int {
	var out []int
	for i.Next() {
		out = append(out, i.Item())
	}
	return out
}

func reversed(s []int) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

var shapes = []struct {
	name   string
	create func() *tree.Node[int]
	want   []int
}{
	{
		name:   "empty",
		create: func() *tree.Node[int] { return nil },
	},
	{
		name:   "one",
		create: func() *tree.Node[int] { return tree.NodeOf(1) },
		want:   []int{1},
	},
	{
		name:   "height=2",
		create: newCompleteTree_2Tall,
		want:   []int{1, 2, 3, 4, 5, 6, 7},
	},
	{
		name:   "dogleg",
		create: newDogleg,
		want:   []int{1, 5, 6, 7, 8, 9},
	},
	{
		name:   "chain",
		create: func() *tree.Node[int] { return newChain(5) },
		want:   []int{1, 2, 3, 4, 5},
	},
	{
		name:   "duplicates",
		create: newDuplicates,
		want:   []int{1, 3, 3},
	},
}

func TestInOrder(t *testing.T) {
	for _, tt := range shapes {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collect(NewInOrder(tt.create())))
		})
	}
}

func TestInOrderReverse(t *testing.T) {
	for _, tt := range shapes {
		t.Run(tt.name, func(t *testing.T) {
			var want []int
			if tt.want != nil {
				want = reversed(tt.want)
			}
			assert.Equal(t, want, collect(NewInOrderReverse(tt.create())))
		})
	}
}

func TestInOrderStack(t *testing.T) {
	for _, tt := range shapes {
		t.Run(tt.name, func(t *testing.T) {
			root := tt.create()
			assert.Equal(t, tt.want, collect(NewInOrderStack(root, 0)))
			assert.Equal(t, tt.want, collect(NewInOrderStack(root, 8)), "with height hint")
		})
	}
}

func TestInOrderStack_NoParentLinks(t *testing.T) {
	root := newDogleg()
	var unlink func(n *tree.Node[int])
	unlink = func(n *tree.Node[int]) {
		if n == nil {
			return
		}
		n.Parent = nil
		unlink(n.Left)
		unlink(n.Right)
	}
	unlink(root)

	i := NewInOrderStack(root, 3)
	assert.True(t, i.Next(), "first")
	assert.Equal(t, 1, i.Item())
	assert.Same(t, root.Left.Left, i.Node())
	assert.True(t, i.Next(), "second")
	assert.Equal(t, 5, i.Item())
	assert.True(t, i.Next(), "third")
	assert.Equal(t, 6, i.Item())
	assert.True(t, i.Next(), "fourth")
	assert.Equal(t, 7, i.Item())
	assert.True(t, i.Next(), "fifth")
	assert.Equal(t, 8, i.Item())
	assert.True(t, i.Next(), "sixth")
	assert.Equal(t, 9, i.Item())
	assert.False(t, i.Next(), "seventh")
}

func TestExhaustedStaysExhausted(t *testing.T) {
	iters := map[string]Iterator[int]{
		"inorder": NewInOrder(newCompleteTree_2Tall()),
		"reverse": NewInOrderReverse(newCompleteTree_2Tall()),
		"stack":   NewInOrderStack(newCompleteTree_2Tall(), 2),
	}
	for name, i := range iters {
		t.Run(name, func(t *testing.T) {
			assert.Len(t, collect(i), 7)
			assert.False(t, i.Next())
			assert.False(t, i.Next())
		})
	}
}
