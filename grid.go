// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sdf computes 2-D signed distance fields from boolean rasters
// using three interchangeable engines: a brute-force reference scan, a
// Dijkstra-style brushfire propagation, and a two-pass linear-time
// separable transform.
package sdf

import "math"

// BooleanGrid is a rectangular W×H array of cells where true denotes
// "interior" and false denotes "exterior". It is immutable for the
// lifetime of a computation.
type BooleanGrid struct {
	w, h int
	data []bool
}

// NewBooleanGrid allocates a W×H grid with every cell false (exterior).
func NewBooleanGrid(w, h int) *BooleanGrid {
	return &BooleanGrid{w: w, h: h, data: make([]bool, w*h)}
}

// Width returns the grid's width in cells.
func (g *BooleanGrid) Width() int { return g.w }

// Height returns the grid's height in cells.
func (g *BooleanGrid) Height() int { return g.h }

// At reports whether cell (x,y) is interior.
func (g *BooleanGrid) At(x, y int) bool { return g.data[y*g.w+x] }

// Set marks cell (x,y) interior (v=true) or exterior (v=false).
func (g *BooleanGrid) Set(x, y int, v bool) { g.data[y*g.w+x] = v }

// inBounds reports whether (x,y) lies within the grid.
func (g *BooleanGrid) inBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// uniform reports whether every cell has the same value, and what it is.
// Uniform input is a degenerate case: both UDFs are not meaningful and
// the SDF is defined as all zeros.
func (g *BooleanGrid) uniform() (value, isUniform bool) {
	if len(g.data) == 0 {
		return false, true
	}
	first := g.data[0]
	for _, v := range g.data {
		if v != first {
			return false, false
		}
	}
	return first, true
}

// invert returns a new grid with every cell's color flipped.
func (g *BooleanGrid) invert() *BooleanGrid {
	out := NewBooleanGrid(g.w, g.h)
	for i, v := range g.data {
		out.data[i] = !v
	}
	return out
}

// ScalarGrid is a rectangular W×H array of 64-bit floats, the shape
// produced by every engine in this package. After an engine returns it,
// ownership passes entirely to the caller.
type ScalarGrid struct {
	w, h int
	data []float64
}

// NewScalarGrid allocates a W×H grid of zeros.
func NewScalarGrid(w, h int) *ScalarGrid {
	return &ScalarGrid{w: w, h: h, data: make([]float64, w*h)}
}

// Width returns the grid's width in cells.
func (g *ScalarGrid) Width() int { return g.w }

// Height returns the grid's height in cells.
func (g *ScalarGrid) Height() int { return g.h }

// At returns the value at cell (x,y).
func (g *ScalarGrid) At(x, y int) float64 { return g.data[y*g.w+x] }

// Set assigns the value at cell (x,y).
func (g *ScalarGrid) Set(x, y int, v float64) { g.data[y*g.w+x] = v }

// row returns the backing slice for row y, for in-place parallel writes.
func (g *ScalarGrid) row(y int) []float64 { return g.data[y*g.w : (y+1)*g.w] }

// edgeDistance computes the distance from a query cell's center to the
// nearest point of the boundary edge shared with an opposite-colored cell
// offset by (dx,dy) cells. The boundary lies at the midpoint of the face
// between opposite cells, hence the 0.5 correction.
func edgeDistance(dx, dy int) float64 {
	adx, ady := math.Abs(float64(dx)), math.Abs(float64(dy))
	if dx == 0 || dy == 0 {
		return adx + ady - 0.5
	}
	cx, cy := adx-0.5, ady-0.5
	return math.Sqrt(cx*cx + cy*cy)
}
