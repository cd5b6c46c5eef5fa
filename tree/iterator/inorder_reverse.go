package iterator

import (
	"go.lepak.sg/ordtree/tree"
)

var _ Iterator[int] = (*InOrderReverse[int])(nil)

// InOrderReverse is an iterator object over a binary tree.
// Iteration starts from the *largest* element and runs to
// the *smallest* element.
// The usage should be pretty familiar:
//
//	i := someBinaryTree.ReverseIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
//
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrderReverse[T any] struct {
	stack []*tree.Node[T]
	item  T
}

// NewInOrderReverse returns a new InOrderReverse iterator over the tree
// rooted at root. heightHint works as in NewInOrderStack.
// Note: This is meant to be called by other tree implementations.
func NewInOrderReverse[T any](root *tree.Node[T], heightHint int) *InOrderReverse[T] {
	if heightHint < 0 {
		heightHint = 0
	}

	i := &InOrderReverse[T]{
		stack: make([]*tree.Node[T], 0, heightHint+1),
	}
	i.pushRight(root)
	return i
}

// Basically InOrderStack but left and right are flipped.
func (i *InOrderReverse[T]) pushRight(n *tree.Node[T]) {
	for n != nil {
		i.stack = append(i.stack, n)
		n = n.Right
	}
}

// Next returns true if there is a next key to yield with Item.
func (i *InOrderReverse[T]) Next() bool {
	var zero T
	if i == nil {
		return false
	}

	if len(i.stack) == 0 {
		i.item = zero
		return false
	}

	pop := i.stack[len(i.stack)-1]
	i.stack[len(i.stack)-1] = nil
	i.stack = i.stack[:len(i.stack)-1]

	i.pushRight(pop.Left)
	i.item = pop.Key

	return true
}

// Item returns the current key of the iterator.
func (i *InOrderReverse[T]) Item() T {
	return i.item
}
