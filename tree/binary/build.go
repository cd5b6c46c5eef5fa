package binary

import (
	"math/rand"

	"golang.org/x/exp/constraints"
)

// BuildRandom builds a binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	nodes := make([]int, num)
	for i := 0; i < num; i++ {
		nodes[i] = i
	}

	rd.Shuffle(num, func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})

	return From(nodes)
}

// BuildRandomDuplicates is like BuildRandom, but keys are drawn
// from [0, limit) with replacement, so duplicates are likely.
// If num or limit is not positive, the tree is empty.
func BuildRandomDuplicates(num, limit int, seed int64) (*Tree[int], []int) {
	if num <= 0 || limit <= 0 {
		return &Tree[int]{}, []int{}
	}

	rd := rand.New(rand.NewSource(seed))

	keys := make([]int, num)
	for i := range keys {
		keys[i] = rd.Intn(limit)
	}

	return From(keys), keys
}

// From builds a tree by adding each of ks in order.
func From[S ~[]T, T constraints.Ordered](ks S) *Tree[T] {
	tr := &Tree[T]{}
	tr.AddAll(ks...)
	return tr
}
