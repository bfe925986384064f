// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdf

import (
	"math"
	"sync"
)

// Linear computes the unsigned distance field of img using the
// Felzenszwalb-Huttenlocher two-pass separable distance transform.
// Pass 1 sweeps every column forward then backward to find,
// for each cell, the integer number of steps to the nearest source cell
// in its own column. Pass 2 sweeps every row's lower envelope of
// parabolas seeded by those per-column step counts, which yields the
// true squared Euclidean distance to the nearest source cell in the
// whole grid; the edge-metric -0.5 correction is applied at
// readout rather than baked into the parabola arithmetic, since the
// parabola envelope itself must stay in exact integer arithmetic to
// avoid floating-point drift in the segment boundaries.
//
// invert selects which color of img is the source set, with the same
// meaning as Brushfire's invert flag: false means interior is the
// source (so the output is the distance to the nearest interior cell).
// Each call yields one half of a signed field; compose.go combines two
// Linear calls into the signed field.
func Linear(img *BooleanGrid, invert bool, cfg Config) (*ScalarGrid, error) {
	if img.w <= 0 || img.h <= 0 {
		return nil, wrapError("linear", ErrInvalidDimensions)
	}

	out := NewScalarGrid(img.w, img.h)
	if _, isUniform := img.uniform(); isUniform {
		return out, nil
	}

	source := !invert
	w, h := img.w, img.h
	g := make([]int, w*h)

	columnStepPass(img, source, g, w, h, cfg)
	rowEnvelopePass(g, out, w, h, cfg)

	return out, nil
}

// linearSentinel stands in for "no source cell in this column" in the
// step-count pass.
func linearSentinel(w, h int) int { return w + h + 2 }

// columnStepPass fills g[y*w+x] with the number of grid steps from (x,y)
// to the nearest source cell in column x, via a forward sweep (nearest
// source at or above) followed by a backward sweep (nearest source at or
// below), each column independent of the others.
func columnStepPass(img *BooleanGrid, source bool, g []int, w, h int, cfg Config) {
	sentinel := linearSentinel(w, h)
	work := func(x int) {
		if img.At(x, 0) == source {
			g[x] = 0
		} else {
			g[x] = sentinel
		}
		for y := 1; y < h; y++ {
			if img.At(x, y) == source {
				g[y*w+x] = 0
			} else {
				g[y*w+x] = 1 + g[(y-1)*w+x]
			}
		}
		for y := h - 2; y >= 0; y-- {
			if g[(y+1)*w+x]+1 < g[y*w+x] {
				g[y*w+x] = g[(y+1)*w+x] + 1
			}
		}
	}
	dispatchRows(w, cfg, work)
}

// rowEnvelopePass fills out's row y with the edge-metric distance
// derived from g's row-y column-step counts, via the lower-envelope-of-
// parabolas scan, each row independent of the others.
func rowEnvelopePass(g []int, out *ScalarGrid, w, h int, cfg Config) {
	work := func(y int) {
		envelopeRow(g, out, y, w)
	}
	dispatchRows(h, cfg, work)
}

// pixDist is the squared Euclidean distance, in the auxiliary (x, g)
// space, between position x (on row y) and candidate source column i:
// pix_dist(x,y,i) = (x-i)^2 + g[i,y]^2.
func pixDist(g []int, w, y, x, i int) int64 {
	dx := int64(x - i)
	gi := int64(g[y*w+i])
	return dx*dx + gi*gi
}

// sep is the integer floor of the x-coordinate at which parabolas rooted
// at columns i and j (j > i) intersect.
func sep(g []int, w, y, i, j int) int {
	gi := int64(g[y*w+i])
	gj := int64(g[y*w+j])
	num := int64(j*j-i*i) + gj*gj - gi*gi
	den := int64(2 * (j - i))
	return floorDiv(num, den)
}

func floorDiv(a, b int64) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return int(q)
}

// envelopeRow runs the left-to-right segment sweep and the readout sweep
// for one row y, writing the edge-metric distance into out's row y.
func envelopeRow(g []int, out *ScalarGrid, y, w int) {
	closestX := make([]int, w)
	endpts := make([]int, w+1)

	seg := 0
	closestX[0] = 0
	endpts[0] = 0

	for x := 1; x < w; x++ {
		for seg >= 0 && pixDist(g, w, y, endpts[seg], closestX[seg]) > pixDist(g, w, y, endpts[seg], x) {
			seg--
		}
		if seg < 0 {
			seg = 0
			closestX[0] = x
			endpts[0] = 0
			continue
		}
		s := sep(g, w, y, closestX[seg], x) + 1
		if s >= w {
			continue
		}
		seg++
		closestX[seg] = x
		endpts[seg] = s
	}
	maxSeg := seg

	row := out.row(y)
	resSeg := 0
	for x := 0; x < w; x++ {
		for resSeg < maxSeg && endpts[resSeg+1] <= x {
			resSeg++
		}
		i := closestX[resSeg]

		var diffx float64
		if x != i {
			diffx = math.Abs(float64(x-i)) - 0.5
		}

		gi := g[y*w+i]
		var diffy float64
		if gi != 0 {
			diffy = float64(gi) - 0.5
		}

		row[x] = math.Sqrt(diffx*diffx + diffy*diffy)
	}
}

// dispatchRows calls work(i) for every i in [0,n), either sequentially or
// fanned out across resolveWorkerCount(cfg, n) goroutines in contiguous
// chunks, mirroring Brute's row chunking in brute.go.
func dispatchRows(n int, cfg Config, work func(i int)) {
	numWorkers := resolveWorkerCount(cfg, n)
	if !cfg.effectiveParallel() || numWorkers <= 1 {
		for i := 0; i < n; i++ {
			work(i)
		}
		return
	}

	chunkSize := (n + numWorkers - 1) / numWorkers
	var wg sync.WaitGroup
	for wk := 0; wk < numWorkers; wk++ {
		start := wk * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				work(i)
			}
		}(start, end)
	}
	wg.Wait()
}
