package shared

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

func TestTree(t *testing.T) {
	var s Tree[string]
	assert.Empty(t, s.Walk())
	assert.Equal(t, "", s.String())

	s.AddAll("Mercury", "Venus", "Mars")
	s.Add("Jupiter")
	s.AddAll("Saturn", "Uranus")

	assert.Equal(t, []string{"Jupiter", "Mars", "Mercury", "Saturn", "Uranus", "Venus"}, s.Walk())
	assert.Equal(t, 6, s.Len())
	assert.True(t, s.Contains("Mars"))
	assert.False(t, s.Contains("Pluto"))

	var firstTwo []string
	s.Range(func(k string) bool {
		firstTwo = append(firstTwo, k)
		return len(firstTwo) < 2
	})
	assert.Equal(t, []string{"Jupiter", "Mars"}, firstTwo)
}

func TestTree_Concurrent(t *testing.T) {
	defer goleak.VerifyNone(t)

	const (
		writers   = 4
		perWriter = 250
		readers   = 8
	)

	var s Tree[int]
	var reads int64

	g, ctx := errgroup.WithContext(context.Background())
	for w := 0; w < writers; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < perWriter; i++ {
				// batches keep readers from seeing half a batch
				s.AddAll(w*perWriter+i, w*perWriter+i)
			}
			return nil
		})
	}
	for r := 0; r < readers; r++ {
		g.Go(func() error {
			for ctx.Err() == nil && atomic.LoadInt64(&reads) < 200 {
				var got []int
				s.Range(func(k int) bool {
					got = append(got, k)
					return true
				})
				// every snapshot is sorted and holds whole pairs
				if !slices.IsSorted(got) || len(got)%2 != 0 {
					t.Errorf("bad snapshot of %d keys", len(got))
				}
				atomic.AddInt64(&reads, 1)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	got := s.Walk()
	assert.Len(t, got, 2*writers*perWriter)
	assert.True(t, slices.IsSorted(got))
	assert.Equal(t, 2*writers*perWriter, s.Len())
}
