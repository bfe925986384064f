// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdf

import "sync"

// udfEngine is the shape shared by Brushfire and Linear: compute the
// unsigned distance field to the nearest cell of the color selected by
// invert. Brute is excluded since it produces a signed field directly
// in one exhaustive pass and has no standalone UDF mode.
type udfEngine func(img *BooleanGrid, invert bool, cfg Config) (*ScalarGrid, error)

// SignedDistanceField computes the SDF of img using one of the two UDF
// engines (EngineBrushfire or EngineLinear): the field is
// `UDF(source=interior) − UDF(source=exterior)`, which is negative at
// interior cells and non-negative at exterior cells. The two UDF calls
// are independent and run concurrently, one goroutine each, pairing a
// worker goroutine with a channel result rather than a shared
// accumulator. Any other cfg.Engine value (including EngineBrute) yields
// an error wrapping ErrInvalidDimensions.
func SignedDistanceField(img *BooleanGrid, cfg Config) (*ScalarGrid, error) {
	if img.w <= 0 || img.h <= 0 {
		return nil, wrapError("compose", ErrInvalidDimensions)
	}
	if _, isUniform := img.uniform(); isUniform {
		return NewScalarGrid(img.w, img.h), nil
	}

	var engine udfEngine
	switch cfg.Engine {
	case EngineBrushfire:
		engine = Brushfire
	case EngineLinear:
		engine = Linear
	default:
		return nil, wrapError("compose", ErrInvalidDimensions)
	}

	type result struct {
		grid *ScalarGrid
		err  error
	}
	interiorCh := make(chan result, 1)
	exteriorCh := make(chan result, 1)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		g, err := engine(img, false, cfg) // invert=false: source=interior
		interiorCh <- result{g, err}
	}()
	go func() {
		defer wg.Done()
		g, err := engine(img, true, cfg) // invert=true: source=exterior
		exteriorCh <- result{g, err}
	}()
	wg.Wait()

	interior, exterior := <-interiorCh, <-exteriorCh
	if interior.err != nil {
		return nil, interior.err
	}
	if exterior.err != nil {
		return nil, exterior.err
	}

	out := NewScalarGrid(img.w, img.h)
	for i := range out.data {
		out.data[i] = interior.grid.data[i] - exterior.grid.data[i]
	}
	return out, nil
}

// Compose is the subtraction step of SignedDistanceField on its own, for
// callers that already hold the two UDFs: it performs the elementwise
// UDF subtraction without recomputing either side.
func Compose(udfInterior, udfExterior *ScalarGrid) (*ScalarGrid, error) {
	if udfInterior.w != udfExterior.w || udfInterior.h != udfExterior.h {
		return nil, wrapError("compose", ErrInvalidDimensions)
	}
	out := NewScalarGrid(udfInterior.w, udfInterior.h)
	for i := range out.data {
		out.data[i] = udfInterior.data[i] - udfExterior.data[i]
	}
	return out, nil
}
