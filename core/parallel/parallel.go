package parallel

import (
	"context"
	"runtime"
	"sync"
)

// ParallelizeCtx divides items into contiguous [start, end) chunks, one per
// worker, and runs fn on each chunk concurrently. workers <= 0 means one
// worker per CPU core.
//
// The first non-nil error cancels the context handed to the remaining
// chunks and is returned once all workers have stopped.
func ParallelizeCtx(ctx context.Context, items, workers int, fn func(ctx context.Context, start, end int) error) error {
	if items == 0 {
		return ctx.Err()
	}

	numWorkers := workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > items {
		numWorkers = items // No need for more workers than items
	}

	// ceiling division
	chunkSize := (items + numWorkers - 1) / numWorkers

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)

	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				once.Do(func() { firstErr = err })
				return
			}
			if err := fn(ctx, s, e); err != nil {
				once.Do(func() {
					firstErr = err
					cancel()
				})
			}
		}(start, end)
	}

	wg.Wait()
	return firstErr
}
