package services

import (
	"context"
	"sync"

	"github.com/luismoralesarg/micro-log/internal/logging"
)

// sliceQueue runs persistence tasks asynchronously while keeping a strict
// FIFO order per slice key. Two rapid writes to the same date can never be
// persisted out of order; writes to different slices proceed independently.
type sliceQueue struct {
	log logging.Logger

	mu    sync.Mutex
	tails map[string]chan struct{}
	wg    sync.WaitGroup

	errMu    sync.Mutex
	firstErr error
}

func newSliceQueue(log logging.Logger) *sliceQueue {
	return &sliceQueue{log: log, tails: make(map[string]chan struct{})}
}

// Enqueue schedules task after every previously enqueued task for the same
// key. Enqueue itself never blocks on I/O; callers observe their in-memory
// update immediately.
func (q *sliceQueue) Enqueue(ctx context.Context, key string, task func(ctx context.Context) error) {
	q.mu.Lock()
	prev := q.tails[key]
	done := make(chan struct{})
	q.tails[key] = done
	q.wg.Add(1)
	q.mu.Unlock()

	go func() {
		defer q.wg.Done()
		defer close(done)
		if prev != nil {
			<-prev
		}
		if err := task(ctx); err != nil {
			q.log.Error(ctx, "persist failed", "slice", key, "error", err)
			q.errMu.Lock()
			if q.firstErr == nil {
				q.firstErr = err
			}
			q.errMu.Unlock()
		}
	}()
}

// Wait blocks until every enqueued task has completed and returns the first
// persistence error seen since the previous Wait. The optimistic in-memory
// state is not rolled back on failure; callers may retry by saving again.
func (q *sliceQueue) Wait() error {
	q.wg.Wait()

	q.errMu.Lock()
	defer q.errMu.Unlock()
	err := q.firstErr
	q.firstErr = nil
	return err
}
