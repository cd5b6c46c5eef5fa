package iterator

import (
	"iter"

	"go.lepak.sg/ordtree/tree"
)

var _ Iterator[int] = (*InOrderStack[int])(nil)

// InOrderStack is an iterator object over a binary tree.
// It does not rely on parent pointers or recursion, instead
// keeping an explicit stack (the frontier) of nodes whose
// left subtree has been dealt with but whose key and right
// subtree are still pending.
//
// The frontier is never deeper than the height of the tree.
type InOrderStack[T any] struct {
	stack []*tree.Node[T]

	item T
	ok   bool
}

// Recursive in order iteration looks like this:
//
//	func visit(n *Node, f func(*Node)) {
//		if n == nil {
//			return
//		}
//		visit(n.Left, f)	--(1)
//		f(n)
//		visit(n.Right, f)	--(2)
//	}
//
// Everything up to (1) is pushing the left edge: the chain of
// visit frames down to the leftmost node, which we replicate in
// i.stack. Popping a node is f(n). Then we continue from (2),
// which is pushing the left edge of n.Right.
// So the top of the stack is always the next node to yield.

// NewInOrderStack creates a new in-order iterator over the tree
// rooted at root.
// If the tree's height is known, pass it as heightHint.
// Otherwise it's safe to leave it as 0.
// Note: This is meant to be called by other tree implementations.
func NewInOrderStack[T any](root *tree.Node[T], heightHint int) *InOrderStack[T] {
	if heightHint < 0 {
		heightHint = 0
	}

	i := &InOrderStack[T]{
		stack: make([]*tree.Node[T], 0, heightHint+1),
	}
	i.pushLeft(root)
	return i
}

func (i *InOrderStack[T]) pushLeft(n *tree.Node[T]) {
	for n != nil {
		i.stack = append(i.stack, n)
		n = n.Left
	}
}

// Advance yields the next key in order. When the iteration is
// finished, it returns the zero T and false, and will keep doing
// so on every later call.
func (i *InOrderStack[T]) Advance() (k T, ok bool) {
	if i == nil || len(i.stack) == 0 {
		return
	}

	pop := i.stack[len(i.stack)-1]
	i.stack[len(i.stack)-1] = nil
	i.stack = i.stack[:len(i.stack)-1]

	i.pushLeft(pop.Right)

	return pop.Key, true
}

// Next returns true if there is a next key to yield with Item.
func (i *InOrderStack[T]) Next() bool {
	if i == nil {
		return false
	}
	i.item, i.ok = i.Advance()
	return i.ok
}

// Item returns the key yielded by the last call to Next.
func (i *InOrderStack[T]) Item() T {
	return i.item
}

// Pending returns the number of nodes on the frontier.
func (i *InOrderStack[T]) Pending() int {
	if i == nil {
		return 0
	}
	return len(i.stack)
}

// Clone returns an iterator that continues from exactly where i is.
// The two iterators can then be advanced independently.
func (i *InOrderStack[T]) Clone() *InOrderStack[T] {
	if i == nil {
		return nil
	}

	c := &InOrderStack[T]{
		stack: make([]*tree.Node[T], len(i.stack), cap(i.stack)),
		item:  i.item,
		ok:    i.ok,
	}
	copy(c.stack, i.stack)
	return c
}

// All returns the remaining keys as a range-over-func sequence.
// Ranging over it drains i. Breaking out of the loop leaves i
// positioned after the last key seen.
func (i *InOrderStack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for k, ok := i.Advance(); ok; k, ok = i.Advance() {
			if !yield(k) {
				return
			}
		}
	}
}
