// Package parallel runs the per-row work of a fill on a fixed set of
// goroutines.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// WorkerPool runs batches of bands on a fixed number of goroutines, each
// with its own queue. An idle worker steals from the other queues before
// it exits, which evens out bands whose rows cost different amounts (a
// narrow tip of a triangle next to its wide base).
//
// Thread safety: WorkerPool is safe for concurrent use. Each ForEachBand
// call owns its queues and goroutines.
type WorkerPool struct {
	workers int
}

// NewWorkerPool returns a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &WorkerPool{workers: workers}
}

// ForEachBand runs fn for every band and waits for all of them. After the
// first failure the remaining unstarted bands are skipped and that first
// error is returned.
func (p *WorkerPool) ForEachBand(bands []Band, fn func(Band) error) error {
	if len(bands) == 0 {
		return nil
	}

	n := min(p.workers, len(bands))
	queues := make([]chan Band, n)
	for i := range queues {
		queues[i] = make(chan Band, (len(bands)+n-1)/n)
	}
	for i, b := range bands {
		queues[i%n] <- b
	}
	// Closed queues still hand out what they hold and never block.
	for _, q := range queues {
		close(q)
	}

	g, ctx := errgroup.WithContext(context.Background())
	for id := range n {
		g.Go(func() error {
			for {
				b, ok := next(queues, id)
				if !ok || ctx.Err() != nil {
					return nil
				}
				if err := fn(b); err != nil {
					return err
				}
			}
		})
	}
	return g.Wait()
}

// next takes a band from the worker's own queue, then from the others.
func next(queues []chan Band, id int) (Band, bool) {
	if b, ok := <-queues[id]; ok {
		return b, true
	}
	for i, q := range queues {
		if i == id {
			continue
		}
		if b, ok := <-q; ok {
			return b, true
		}
	}
	return Band{}, false
}
