// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdf

import (
	"context"
	"sync"
	"sync/atomic"
)

// Compute is the library's single dispatch entry point: it validates
// img's dimensions and routes to the engine cfg.Engine names, using cfg
// exactly as given (zero-valued fields are not replaced by
// DefaultConfig's values). Brute already returns a signed
// field directly; Brushfire and Linear are routed through
// SignedDistanceField, which runs their two UDF directions concurrently
// and subtracts.
func Compute(img *BooleanGrid, cfg Config) (*ScalarGrid, error) {
	if img.w <= 0 || img.h <= 0 {
		return nil, wrapError("compute", ErrInvalidDimensions)
	}

	switch cfg.Engine {
	case EngineBrute:
		return Brute(img, cfg)
	case EngineBrushfire, EngineLinear:
		return SignedDistanceField(img, cfg)
	default:
		return SignedDistanceField(img, cfg)
	}
}

// batchWorkerPool bounds how many Compute calls in a BatchCompute run may
// be in flight at once, independent of how many goroutines any one
// Compute call itself spawns internally: a buffered channel used as a
// counting semaphore, plus atomic job counters for stats().
type batchWorkerPool struct {
	semaphore  chan struct{}
	activeJobs int64
	totalJobs  int64
}

func newBatchWorkerPool(workers int) *batchWorkerPool {
	if workers <= 0 {
		workers = 1
	}
	return &batchWorkerPool{semaphore: make(chan struct{}, workers)}
}

// BatchWorkerPoolStats reports a BatchCompute run's concurrency counters.
type BatchWorkerPoolStats struct {
	ActiveJobs int64
	TotalJobs  int64
}

func (p *batchWorkerPool) stats() BatchWorkerPoolStats {
	return BatchWorkerPoolStats{
		ActiveJobs: atomic.LoadInt64(&p.activeJobs),
		TotalJobs:  atomic.LoadInt64(&p.totalJobs),
	}
}

// BatchCompute runs Compute over every grid in imgs, bounded to at most
// outerParallelism concurrent Compute calls (independent of each call's
// own internal row/column parallelism). It exists because a harness that
// computes fields for many rasters one at a time leaves worker threads
// idle between calls. A ctx cancellation or the first per-grid error
// aborts outstanding work (grids not yet started are skipped; Compute
// calls already running finish) and is returned to the caller; results
// already computed for other grids are discarded (all-or-nothing).
func BatchCompute(ctx context.Context, imgs []*BooleanGrid, cfg Config, outerParallelism int) ([]*ScalarGrid, error) {
	if len(imgs) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool := newBatchWorkerPool(outerParallelism)
	results := make([]*ScalarGrid, len(imgs))

	var wg sync.WaitGroup
	var errOnce sync.Once
	var firstErr error

	for i, img := range imgs {
		wg.Add(1)
		go func(i int, img *BooleanGrid) {
			defer wg.Done()

			select {
			case pool.semaphore <- struct{}{}:
				defer func() { <-pool.semaphore }()
			case <-ctx.Done():
				errOnce.Do(func() { firstErr = ctx.Err() })
				return
			}

			atomic.AddInt64(&pool.activeJobs, 1)
			defer atomic.AddInt64(&pool.activeJobs, -1)

			select {
			case <-ctx.Done():
				errOnce.Do(func() { firstErr = ctx.Err() })
				return
			default:
			}

			grid, err := Compute(img, cfg)
			if err != nil {
				errOnce.Do(func() { firstErr = err })
				cancel()
				return
			}
			results[i] = grid
			atomic.AddInt64(&pool.totalJobs, 1)
		}(i, img)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}
