// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdf

import (
	"image"
	"image/color"
	"math"
)

// defaultBoundaryBand is the default boundary-band half-width used when
// a caller doesn't supply one.
const defaultBoundaryBand = 0.71

// Normalize divides every cell of sdf by max(|min|, |max|) over the
// whole grid, so the result's range is within [-1, 1]. A constant field
// (min == max, including the all-zero degenerate case) is returned
// unchanged rather than divided by zero.
func Normalize(sdf *ScalarGrid) *ScalarGrid {
	min, max := sdf.data[0], sdf.data[0]
	for _, v := range sdf.data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	scale := math.Max(math.Abs(min), math.Abs(max))
	out := NewScalarGrid(sdf.w, sdf.h)
	if scale == 0 || min == max {
		copy(out.data, sdf.data)
		return out
	}
	for i, v := range sdf.data {
		out.data[i] = v / scale
	}
	return out
}

// Visualize renders sdf as an RGB image: R carries the
// normalized exterior magnitude, G the normalized interior magnitude,
// and B marks a band within boundaryBand of the zero crossing. sdf is
// normalized internally via Normalize before the per-cell mapping, so
// callers pass the raw signed field.
func Visualize(sdf *ScalarGrid, boundaryBand float64) *image.RGBA {
	n := Normalize(sdf)
	out := image.NewRGBA(image.Rect(0, 0, sdf.w, sdf.h))
	for y := 0; y < sdf.h; y++ {
		for x := 0; x < sdf.w; x++ {
			v := n.At(x, y)
			r := math.Max(0, v)
			g := math.Max(0, -v)
			var b float64
			if math.Abs(sdf.At(x, y)) < boundaryBand {
				b = 1
			}
			out.SetRGBA(x, y, color.RGBA{
				R: to8(r),
				G: to8(g),
				B: to8(b),
				A: 0xff,
			})
		}
	}
	return out
}

// VisualizeDefault renders sdf using the default boundary band of 0.71
// cell units.
func VisualizeDefault(sdf *ScalarGrid) *image.RGBA {
	return Visualize(sdf, defaultBoundaryBand)
}

// to8 clamps a [0,1] float to an 8-bit color channel.
func to8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(v * 0xff)
}
