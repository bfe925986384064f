// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdf

import (
	"image"
	"image/color"
)

// ChannelSelector extracts a single scalar feature from a pixel, for use
// with Threshold. Values are expected in [0, 1], matching the range
// color.RGBA's 16-bit channels produce once divided down.
type ChannelSelector func(c color.Color) float64

// Luminance is a ChannelSelector using the standard Rec. 601 luma
// weighting of the red, green and blue channels.
func Luminance(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 0xffff
}

// AlphaChannel is a ChannelSelector using a pixel's alpha channel alone.
func AlphaChannel(c color.Color) float64 {
	_, _, _, a := c.RGBA()
	return float64(a) / 0xffff
}

// Threshold converts a color image to a BooleanGrid: cell (x,y) is
// interior (true) iff channel(img.At(x,y)) >= t. This is one
// of the two declared external collaborators; the core engines never
// call it.
func Threshold(img image.Image, t float64, channel ChannelSelector) *BooleanGrid {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := NewBooleanGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			out.Set(x, y, channel(px) >= t)
		}
	}
	return out
}
