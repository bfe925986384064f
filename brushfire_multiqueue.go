// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdf

import (
	"math"
	"sync"
)

// numPolarSectors is the number of angular partitions MultiQueuePolar
// splits the grid into around its center. Eight sectors keeps each
// sector's seeding scan embarrassingly parallel without making the
// serialized global-min step (one comparison per sector per pop) a
// bottleneck.
const numPolarSectors = 8

// sectorOf returns which polar sector owns cell (x,y), measured as the
// angle from the grid's center to (x,y)'s center, split into
// numPolarSectors equal wedges starting at the positive x-axis. Offsets
// are normalized by each axis's half-extent (`y/cy − 1, x/cx − 1`) rather
// than left in raw pixel units, so sectors cover equal image fractions
// rather than equal angles on non-square grids.
func sectorOf(x, y, w, h int) int {
	cx, cy := float64(w)/2, float64(h)/2
	dx, dy := (float64(x)+0.5)/cx-1, (float64(y)+0.5)/cy-1
	angle := math.Atan2(dy, dx)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	sector := int(angle / (2 * math.Pi / numPolarSectors))
	if sector >= numPolarSectors {
		sector = numPolarSectors - 1
	}
	return sector
}

// brushfireMultiQueue runs the polar-sector variant: cells
// are partitioned into numPolarSectors angular wedges around the grid's
// center, each wedge seeded by its own goroutine into its own
// wavefrontQueue, and propagation then proceeds on a single goroutine by
// repeatedly picking the global minimum across all sector queue heads
// (a sequential scan of the heads), closing that cell, and relaxing its
// neighbors into
// whichever sector queue owns them (which may differ from the popped
// cell's own sector, since sectors are a propagation-scheduling device,
// not a visibility boundary).
//
// Because every cell still closes in strictly non-decreasing priority
// order, this produces the same output as brushfireSingleQueue; it
// exists to let wavefront seeding (the one step genuinely independent
// per sector) run in parallel on grids where that scan dominates. It
// reports whether cfg's CancelFlag fired before propagation finished.
func brushfireMultiQueue(img *BooleanGrid, source bool, out *ScalarGrid, cfg Config) bool {
	w, h := img.w, img.h
	closed := newClosedSet(w, h)
	queues := make([]*wavefrontQueue, numPolarSectors)
	var mu [numPolarSectors]sync.Mutex

	var wg sync.WaitGroup
	for s := 0; s < numPolarSectors; s++ {
		queues[s] = newWavefrontQueue((w + h) / numPolarSectors)
		wg.Add(1)
		go func(s int) {
			defer wg.Done()
			seedBrushfireSector(img, source, w, h, s, func(n WavefrontNode) {
				mu[s].Lock()
				queues[s].push(n)
				mu[s].Unlock()
			})
		}(s)
	}
	wg.Wait()

	cc := newCancelChecker(cfg)
	steps := 0
	for {
		best := -1
		bestPriority := math.Inf(1)
		for s, q := range queues {
			if q.Len() == 0 {
				continue
			}
			if p := q.items[0].node.priority(); p < bestPriority {
				bestPriority = p
				best = s
			}
		}
		if best < 0 {
			break
		}
		node, _ := queues[best].popMin()
		if closed.contains(node.X, node.Y) {
			continue
		}
		closed.mark(node.X, node.Y)
		out.Set(node.X, node.Y, node.priority())

		relaxNeighbors(img, source, w, h, closed, node, func(n WavefrontNode) {
			queues[sectorOf(n.X, n.Y, w, h)].push(n)
		})

		steps++
		if steps%4096 == 0 && cc.cancelled() {
			return true
		}
	}
	return false
}

// seedBrushfireSector enqueues wavefront nodes exactly like seedBrushfire,
// but only for source cells whose own sector is s; this is what lets the
// per-sector seeding goroutines scan disjoint work.
func seedBrushfireSector(img *BooleanGrid, source bool, w, h, s int, push func(WavefrontNode)) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if sectorOf(x, y, w, h) != s {
				continue
			}
			if img.At(x, y) != source {
				continue
			}
			for _, d := range neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				if img.At(nx, ny) == source {
					continue
				}
				dx, dy := float64(x-nx)/2, float64(y-ny)/2
				push(WavefrontNode{X: nx, Y: ny, DX: dx, DY: dy})
			}
		}
	}
}
