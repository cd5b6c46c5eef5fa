// Package shared wraps a binary.Tree for concurrent use.
//
// The tree's nodes are not designed for fine-grained locking, so the
// whole tree is guarded by one sync.RWMutex: any number of readers
// (walks, searches, ranges) may run together, and Add waits for all
// of them to finish.
package shared

import (
	"sync"

	"go.lepak.sg/ordtree/tree/binary"
	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree that is safe for concurrent use.
// The zero Tree is empty and ready to use. A Tree must not be copied.
type Tree[T constraints.Ordered] struct {
	mu sync.RWMutex
	t  binary.Tree[T]
}

// Add inserts k. It holds the write lock.
func (s *Tree[T]) Add(k T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.t.Add(k)
}

// AddAll inserts each of ks in order under a single write lock,
// so readers never see part of ks.
func (s *Tree[T]) AddAll(ks ...T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.t.AddAll(ks...)
}

// Walk returns a snapshot of every key in order.
func (s *Tree[T]) Walk() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.t.Walk()
}

// Contains reports whether k is in the tree.
func (s *Tree[T]) Contains(k T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.t.Contains(k)
}

// Len counts the keys in the tree.
func (s *Tree[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.t.Len()
}

// Range calls f with each key in order until f returns false.
// The read lock is held for the whole traversal, so f must not
// call Add or AddAll on the same Tree.
func (s *Tree[T]) Range(f func(k T) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.t.Iterator()
	for i.Next() {
		if !f(i.Item()) {
			return
		}
	}
}

func (s *Tree[T]) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.t.String()
}
