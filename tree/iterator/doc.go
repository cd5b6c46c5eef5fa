// Package iterator provides tree iterators for use
// by tree implementations.
//
// All iterators here are read-only views into a tree. They keep
// pointers to the tree's nodes, so an iterator must not outlive
// its tree, and the result of mutating the tree while iterating
// over it is undefined.
package iterator

import (
	"go.lepak.sg/ordtree/chops"
)

// Iterator describes the common interface for all
// iterators in this package.
// Next must always be called before Item, even for
// the first round of iteration.
// Next may be called any number of times; once it has
// returned false, it keeps returning false.
// Item may be called any number of times if the
// last call to Next returned true. Otherwise Item returns
// the zero T.
// The iterator may be abandoned at any time.
//
// The usual usage of an Iterator is like this:
//
//	i := someTree.Iterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k, or break ...
//	}
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// Make sure this Iterator is kept in sync with the one in chops.
var _ chops.Iterator[int] = (Iterator[int])(nil)

// Collect drains i and returns every item it yielded, in order.
// The result is never nil.
func Collect[T any](i Iterator[T]) []T {
	out := make([]T, 0)
	if i == nil {
		return out
	}
	for i.Next() {
		out = append(out, i.Item())
	}
	return out
}
