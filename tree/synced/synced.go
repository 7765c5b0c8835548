// Package synced wraps a binary.Tree for concurrent use.
package synced

import (
	"sync"

	"go.lepak.sg/rotatree/tree/binary"
)

// Tree is a binary.Tree guarded by a read-write lock.
// It is safe for concurrent use.
//
// Node references never leave the lock: rotations and anything else
// that needs nodes must be done inside Do.
type Tree[T any] struct {
	mu sync.RWMutex
	t  *binary.Tree[T]
}

// New wraps t. The caller must not use t directly afterwards.
func New[T any](t *binary.Tree[T]) *Tree[T] {
	return &Tree[T]{t: t}
}

func (s *Tree[T]) Insert(k T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.t.Insert(k)
}

func (s *Tree[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.t.Clear()
}

func (s *Tree[T]) Contains(k T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.t.Contains(k)
}

func (s *Tree[T]) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.t.Size()
}

func (s *Tree[T]) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.t.IsEmpty()
}

// Values returns a snapshot of the keys in order.
func (s *Tree[T]) Values() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.t.Values()
}

func (s *Tree[T]) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.t.String()
}

// Do runs f with exclusive access to the underlying tree and
// returns its error. f must not keep node references after it returns.
func (s *Tree[T]) Do(f func(t *binary.Tree[T]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return f(s.t)
}

// View runs f with shared access to the underlying tree.
// f must not modify the tree.
func (s *Tree[T]) View(f func(t *binary.Tree[T])) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f(s.t)
}
