package binary

import (
	"math/rand"

	"go.lepak.sg/rotatree/tree"
	"go.lepak.sg/rotatree/tree/iterator"
)

// BuildRandom builds a binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	tr := New[int]()
	for _, n := range rd.Perm(num) {
		// ints are never absent
		_ = tr.Insert(n)
	}

	return tr
}

// BuildRandomBalanced builds a balanced binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
// Along the created binary tree, the number of attempts required
// to create the tree is also returned.
// This gets very slow beyond a few dozen nodes.
func BuildRandomBalanced(num int, seed int64) (*Tree[int], int) {
	rd := rand.New(rand.NewSource(seed))

	nodes := make([]int, num)
	for i := 0; i < num; i++ {
		nodes[i] = i
	}

	var tr *Tree[int]
	attempts := 0

	for tr == nil || !tr.Balanced() {
		attempts++

		rd.Shuffle(num, func(i, j int) {
			nodes[i], nodes[j] = nodes[j], nodes[i]
		})

		tr = New[int]()
		for _, n := range nodes {
			_ = tr.Insert(n)
		}
	}

	return tr, attempts
}

// RotateRandomly performs count rotations on tr, each one lifting a
// randomly chosen non-root node over its parent. It returns the number
// of rotations performed, which is less than count only if the tree
// has fewer than two nodes.
func RotateRandomly[T any](tr *Tree[T], count int, seed int64) (int, error) {
	rd := rand.New(rand.NewSource(seed))

	var nodes []*tree.Node[T]
	for i := iterator.NewInOrderStack(tr.root, 0); i.Next(); {
		nodes = append(nodes, i.Node())
	}

	if len(nodes) < 2 {
		return 0, nil
	}

	done := 0
	for done < count {
		n := nodes[rd.Intn(len(nodes))]
		if n.Parent == nil {
			continue
		}

		if err := tr.Rotate(n, n.Parent); err != nil {
			return done, err
		}
		done++
	}

	return done, nil
}
