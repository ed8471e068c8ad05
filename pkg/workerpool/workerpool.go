// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Each runs fn for every item on at most workerCount goroutines.
// Failures are the caller's business: fn has no error return and one item never stops the others.
// Each returns ctx.Err() when the context ends before every item was handed out.
func Each[T any](ctx context.Context, workerCount int, items []T, fn func(context.Context, T)) error {
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(items) {
		workerCount = len(items)
	}

	tasks := make(chan T)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range tasks {
				fn(ctx, item)
			}
		}()
	}

	var err error
feed:
	for _, item := range items {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case tasks <- item:
		}
	}
	close(tasks)
	wg.Wait()

	return err
}
