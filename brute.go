// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdf

import (
	"math"
	"runtime"
	"sync"
)

// Brute computes the signed distance field of img by exhaustive scan: for
// every cell it scans every opposite-colored cell and keeps the minimum
// edge distance, negated when the cell itself is interior.
// It runs in Θ(W²H²) and exists as the correctness oracle the other two
// engines are checked against.
//
// Rows are partitioned into contiguous chunks of size ⌈H/numWorkers⌉ and
// dispatched across a worker pool, one goroutine per chunk — the same
// work-partitioning shape used by parallel clustering passes elsewhere
// (chunk size = (n + numWorkers - 1) / numWorkers, each worker owning a
// disjoint output range with no cross-worker synchronization).
func Brute(img *BooleanGrid, cfg Config) (*ScalarGrid, error) {
	if img.w <= 0 || img.h <= 0 {
		return nil, wrapError("brute", ErrInvalidDimensions)
	}

	out := NewScalarGrid(img.w, img.h)

	if _, isUniform := img.uniform(); isUniform {
		return out, nil // all zeros: neither color has an opposite cell
	}

	numWorkers := resolveWorkerCount(cfg, img.h)
	if !cfg.effectiveParallel() || numWorkers <= 1 {
		bruteRows(img, out, 0, img.h)
		return out, nil
	}

	chunkSize := (img.h + numWorkers - 1) / numWorkers
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > img.h {
			end = img.h
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			bruteRows(img, out, start, end)
		}(start, end)
	}
	wg.Wait()

	return out, nil
}

// bruteRows fills out's rows [rowStart,rowEnd) with the signed distance
// from every cell in that range to the nearest opposite-colored cell.
func bruteRows(img *BooleanGrid, out *ScalarGrid, rowStart, rowEnd int) {
	w, h := img.w, img.h
	for y := rowStart; y < rowEnd; y++ {
		row := out.row(y)
		for x := 0; x < w; x++ {
			self := img.At(x, y)
			best := math.Inf(1)
			for y1 := 0; y1 < h; y1++ {
				for x1 := 0; x1 < w; x1++ {
					if img.At(x1, y1) == self {
						continue
					}
					d := edgeDistance(x1-x, y1-y)
					if d < best {
						best = d
					}
				}
			}
			if self {
				best = -best
			}
			row[x] = best
		}
	}
}

// resolveWorkerCount clamps the configured thread count to the number of
// independent units of work available, defaulting to GOMAXPROCS(0). When
// units is at least batchSizeHint it also caps the count at
// units/batchSizeHint, so that each worker gets roughly batchSizeHint
// rows/columns or more (wider batches amortize goroutine overhead better
// on SIMD-capable hosts; see config.go); below that no such cap applies.
func resolveWorkerCount(cfg Config, units int) int {
	n := cfg.ThreadCount
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if hint := batchSizeHint(); hint > 0 {
		if max := units / hint; max >= 1 && n > max {
			n = max
		}
	}
	if n > units {
		n = units
	}
	if n < 1 {
		n = 1
	}
	return n
}
