// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdf

import "github.com/kelindar/bitmap"

// neighborOffsets are the eight integer step directions used to seed and
// relax cells during brushfire propagation.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// closedSet tracks, for a W×H grid flattened row-major, which cells have
// committed a result during brushfire propagation. It is backed by
// kelindar/bitmap.Bitmap rather than a []bool: a dense point-query,
// point-set bitmap over a linear cell index is exactly what that type
// is built for.
type closedSet struct {
	w, h int
	bits bitmap.Bitmap
}

func newClosedSet(w, h int) closedSet {
	var bits bitmap.Bitmap
	bits.Grow(uint32(w*h + 1))
	return closedSet{w: w, h: h, bits: bits}
}

func (c closedSet) index(x, y int) uint32 { return uint32(y*c.w + x) }

func (c closedSet) contains(x, y int) bool { return c.bits.Contains(c.index(x, y)) }

func (c closedSet) mark(x, y int) { c.bits.Set(c.index(x, y)) }

// Brushfire computes the unsigned distance field of img by best-first
// propagation from the source color's boundary. If invert is
// false the source color is interior (true); if invert is true the
// source color is exterior (false). Source cells hold 0 in the result.
//
// This dispatches to the multi-queue-polar propagation loop when
// cfg.BrushfireVariant is MultiQueuePolar and cfg.Parallel is set, and to
// the single-queue loop otherwise.
func Brushfire(img *BooleanGrid, invert bool, cfg Config) (*ScalarGrid, error) {
	if img.w <= 0 || img.h <= 0 {
		return nil, wrapError("brushfire", ErrInvalidDimensions)
	}

	out := NewScalarGrid(img.w, img.h)
	if _, isUniform := img.uniform(); isUniform {
		return out, nil
	}

	source := !invert // true means "interior is the source color"

	var cancelled bool
	if cfg.effectiveParallel() && cfg.BrushfireVariant == MultiQueuePolar {
		cancelled = brushfireMultiQueue(img, source, out, cfg)
	} else {
		cancelled = brushfireSingleQueue(img, source, out, cfg)
	}
	if cancelled {
		return out, wrapError("brushfire", ErrCancelled)
	}
	return out, nil
}

// brushfireSingleQueue runs the seeding/propagation/termination
// loop with a single decrease-key queue. It reports whether cfg's
// CancelFlag fired before propagation finished, in which case out holds
// whatever results had already been committed.
func brushfireSingleQueue(img *BooleanGrid, source bool, out *ScalarGrid, cfg Config) bool {
	w, h := img.w, img.h
	closed := newClosedSet(w, h)
	q := newWavefrontQueue(w + h)

	seedBrushfire(img, source, w, h, func(n WavefrontNode) { q.push(n) })

	cc := newCancelChecker(cfg)
	steps := 0
	for {
		node, ok := q.popMin()
		if !ok {
			break
		}
		if closed.contains(node.X, node.Y) {
			continue
		}
		closed.mark(node.X, node.Y)
		out.Set(node.X, node.Y, node.priority())

		relaxNeighbors(img, source, w, h, closed, node, func(n WavefrontNode) { q.push(n) })

		steps++
		if steps%4096 == 0 && cc.cancelled() {
			return true
		}
	}
	return false
}

// seedBrushfire enqueues, for every source cell, a wavefront node for
// each of its non-source neighbors.
func seedBrushfire(img *BooleanGrid, source bool, w, h int, push func(WavefrontNode)) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
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

// relaxNeighbors relaxes every in-bounds, non-closed, non-source neighbor
// of a just-closed node.
func relaxNeighbors(img *BooleanGrid, source bool, w, h int, closed closedSet, node WavefrontNode, push func(WavefrontNode)) {
	for _, d := range neighborOffsets {
		nx, ny := node.X+d[0], node.Y+d[1]
		if nx < 0 || nx >= w || ny < 0 || ny >= h {
			continue
		}
		if closed.contains(nx, ny) {
			continue
		}
		if img.At(nx, ny) == source {
			continue
		}
		ndx := node.DX - float64(d[0])
		ndy := node.DY - float64(d[1])
		push(WavefrontNode{X: nx, Y: ny, DX: ndx, DY: ndy})
	}
}
