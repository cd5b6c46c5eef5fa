package chops

import (
	"context"
)

// Iterator describes some iterator over a data structure.
// It must not require closing at the end of iteration,
// as CoIterate may abandon it at any time.
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// CoIterate starts coroutine-style iteration: a goroutine drains
// iterator and sends each item on the returned channel.
// The usage is as follows:
//
//	ctx, cancel := context.WithCancel(ctx)
//	defer cancel()
//	for k := range chops.CoIterate[T](ctx, x.Iterator()) {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			break
//		}
//	}
//
// The channel is closed once the iterator is exhausted or ctx is done,
// whichever comes first, and the goroutine exits with it. A receiver
// that keeps reading after cancel may still get at most one more item,
// the one that was already waiting to be sent. If you stop receiving
// early, cancel ctx or the goroutine will block forever.
//
// A nil iterator gives an already closed channel. If you might pass a
// typed nil pointer, make sure its methods handle a nil receiver.
//
// The iterator is only touched by the goroutine once CoIterate returns.
func CoIterate[T any](ctx context.Context, iterator Iterator[T]) <-chan T {
	out := make(chan T)

	if iterator == nil {
		close(out)
		return out
	}

	go func(out chan<- T, i Iterator[T]) {
		defer close(out)
		for i.Next() {
			// a select with both cases ready picks at random,
			// so don't offer another item once ctx is done
			if ctx.Err() != nil {
				return
			}
			select {
			case out <- i.Item():
			case <-ctx.Done():
				return
			}
		}
	}(out, iterator)

	return out
}
