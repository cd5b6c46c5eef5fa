package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is one position of a binary tree. A nil *Node is the empty tree;
// a non-nil Node always has exactly two subtrees, either of which may be empty.
// Each node is owned by exactly one parent (or by the tree root).
type Node[T any] struct {
	Key         T
	Left, Right *Node[T]
}

// NodeOf returns a new leaf holding k.
func NodeOf[T any](k T) *Node[T] {
	return &Node[T]{
		Key: k,
	}
}

// Leaf reports whether n has no children.
func (n *Node[T]) Leaf() bool {
	return n != nil && n.Left == nil && n.Right == nil
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func (o Order) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "<invalid tree.Order>"
	}
}

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}
