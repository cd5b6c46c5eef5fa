package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"go.lepak.sg/ordtree/tree/binary"
	"go.lepak.sg/ordtree/tree/iterator"
)

var (
	seed    = flag.Int64("s", 0, "seed (default current unix time in ns)")
	num     = flag.Int("n", 10, "number of nodes in the tree")
	dups    = flag.Int("d", 0, "if > 0, draw keys from [0, d) with replacement instead of a permutation")
	reverse = flag.Bool("r", false, "also print the keys in descending order")
)

func main() {
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	var tr *binary.Tree[int]
	if *dups > 0 {
		tr, _ = binary.BuildRandomDuplicates(*num, *dups, *seed)
	} else {
		tr = binary.BuildRandom(*num, *seed)
	}

	preorder := make([]int, 0, *num)
	tr.PreOrder(func(k int) bool {
		preorder = append(preorder, k)
		return true
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	inorder := make([]int, 0, *num)
	for n := range tr.InOrderCoroutine(ctx) {
		inorder = append(inorder, n)
	}

	fmt.Println("seed:", *seed)
	fmt.Println("preorder:", preorder)
	fmt.Println("walk:", tr.Walk())
	fmt.Println("inorder:", inorder)
	if *reverse {
		fmt.Println("reverse:", iterator.Collect[int](tr.ReverseIterator()))
	}

	fmt.Println("tree:")
	fmt.Print(tr.String())

	fmt.Println("height:", tr.Height(), "valid:", tr.Valid())
}
