package binary

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"go.lepak.sg/ordtree/chops"
	"go.lepak.sg/ordtree/tree"
	"go.lepak.sg/ordtree/tree/iterator"
	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree. It is safe for concurrent reads
// (searching, iterating, etc) but not for concurrent reads and writes
// (adding). See package shared for a locked version.
//
// The zero Tree is the empty tree and may be used immediately.
// A Tree must not be copied: copies would share nodes, so adding to
// one would change the other. Pass *Tree around instead.
//
// This tree implementation does not support removal. It is also not
// self-balancing.
//
// Invariants:
//   - At any node N in the tree, all node keys in the subtree rooted at N.Left
//     will be less than or equal to N.Key
//   - At any node N in the tree, all node keys in the subtree rooted at N.Right
//     will be greater than N.Key
//   - Duplicates are allowed. A key equal to N.Key always goes to N.Left
type Tree[T constraints.Ordered] struct {
	_ noCopy

	// the tree is rooted here.
	// don't return nodes directly - client could mutate data or children!
	root *tree.Node[T]
}

// Add inserts k into the binary tree.
// Add never fails. Each call allocates exactly one new leaf.
func (t *Tree[T]) Add(k T) {
	at := &t.root

	// walk down to the empty position k belongs in
	for *at != nil {
		switch tree.Compare(k, (*at).Key) {
		case tree.Less, tree.Equal:
			at = &(*at).Left
		case tree.Greater:
			at = &(*at).Right
		default:
			panic("unreachable")
		}
	}

	*at = tree.NodeOf(k)
}

// noCopy lets go vet's copylocks check flag copies of a Tree.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// AddAll adds each of ks in order.
func (t *Tree[T]) AddAll(ks ...T) {
	for _, k := range ks {
		t.Add(k)
	}
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	n := t.root

	for n != nil {
		switch tree.Compare(k, n.Key) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			return true
		default:
			panic("unreachable")
		}
	}

	return false
}

// Less returns the largest key in the tree
// that is less than k.
// If there is no key in the tree less than k,
// p is the zero T and ok is false.
func (t *Tree[T]) Less(k T) (p T, ok bool) {
	// Search for k the way Add would. Every time the search
	// goes right, that node is less than k and is the best
	// candidate so far. Equal keys send the search left, so
	// they are never picked.
	n := t.root

	for n != nil {
		switch tree.Compare(k, n.Key) {
		case tree.Less, tree.Equal:
			n = n.Left
		case tree.Greater:
			p, ok = n.Key, true
			n = n.Right
		default:
			panic("unreachable")
		}
	}

	return
}

// Empty returns true if nothing has been added to the tree.
func (t *Tree[T]) Empty() bool {
	return t.root == nil
}

// Walk returns every key in the tree in order.
// The result is never nil, even for the empty tree.
func (t *Tree[T]) Walk() []T {
	return walk(t.root, make([]T, 0))
}

func walk[T any](n *tree.Node[T], out []T) []T {
	// Classic recursive in-order traversal.
	// Compare this to iterator.InOrderStack which is not recursive
	if n == nil {
		return out
	}

	out = walk(n.Left, out)
	out = append(out, n.Key)
	return walk(n.Right, out)
}

// InOrder applies f to each key in the tree in-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) InOrder(f func(k T) bool) {
	visitInOrder(t.root, f)
}

func visitInOrder[T any](n *tree.Node[T], f func(k T) bool) bool {
	if n == nil {
		return true
	}

	return visitInOrder(n.Left, f) && f(n.Key) && visitInOrder(n.Right, f)
}

// PreOrder applies f to each key in the tree pre-order, that is,
// a node before either of its subtrees.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) PreOrder(f func(k T) bool) {
	visitPreOrder(t.root, f)
}

func visitPreOrder[T any](n *tree.Node[T], f func(k T) bool) bool {
	if n == nil {
		return true
	}

	return f(n.Key) && visitPreOrder(n.Left, f) && visitPreOrder(n.Right, f)
}

// Iterator returns an iterator object that yields
// keys from the tree in-order.
// Every call returns a new, independent iterator.
func (t *Tree[T]) Iterator() *iterator.InOrderStack[T] {
	return iterator.NewInOrderStack(t.root, 0)
}

// ReverseIterator returns an iterator object that yields
// keys from the tree in reverse order.
func (t *Tree[T]) ReverseIterator() *iterator.InOrderReverse[T] {
	return iterator.NewInOrderReverse(t.root, 0)
}

// All returns the keys in order as a range-over-func sequence.
// Each range over the result starts from the smallest key again.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.Iterator().All()(yield)
	}
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	ctx, cancel := context.WithCancel(ctx)
//	defer cancel()
//	for k := range t.InOrderCoroutine(ctx) {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			break
//		}
//	}
//
// Note: InOrderCoroutine starts a goroutine, which exits when either
// ctx is done or the iteration is finished.
func (t *Tree[T]) InOrderCoroutine(ctx context.Context) <-chan T {
	return chops.CoIterate[T](ctx, t.Iterator())
}

// Len counts the keys in the tree. No count is stored, so this is O(n).
func (t *Tree[T]) Len() int {
	n := 0
	t.InOrder(func(T) bool {
		n++
		return true
	})
	return n
}

// Height returns the number of nodes on the longest path from the root
// to a leaf. The empty tree has height 0.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

func height[T any](n *tree.Node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.Left), height(n.Right))
}

// Valid checks the ordering invariants over the whole tree.
// It can only fail if the tree was built by something other than Add.
func (t *Tree[T]) Valid() bool {
	return valid(t.root, nil, nil)
}

// valid checks that every key under n is in (lo, hi].
// A nil bound is unbounded.
func valid[T constraints.Ordered](n *tree.Node[T], lo, hi *T) bool {
	if n == nil {
		return true
	}

	if lo != nil && n.Key <= *lo {
		return false
	}
	if hi != nil && n.Key > *hi {
		return false
	}

	return valid(n.Left, lo, &n.Key) && valid(n.Right, &n.Key, hi)
}

// String returns a string representation of the tree.
// A complete binary tree with height 3 would look like this:
//
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
