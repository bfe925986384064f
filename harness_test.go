// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdf

import (
	"context"
	"math"
	"testing"
)

func TestComputeInvalidDimensions(t *testing.T) {
	g := &BooleanGrid{w: 0, h: 3}
	if _, err := Compute(g, DefaultConfig()); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestComputeDispatchesByEngine(t *testing.T) {
	g := gridFromPattern([]string{
		".....",
		".###.",
		".###.",
		".###.",
		".....",
	})

	brute := DefaultConfig()
	brute.Engine = EngineBrute
	bruteOut, err := Compute(g, brute)
	if err != nil {
		t.Fatal(err)
	}

	linear := DefaultConfig()
	linear.Engine = EngineLinear
	linearOut, err := Compute(g, linear)
	if err != nil {
		t.Fatal(err)
	}

	tol := 1e-9 * float64(g.w+g.h)
	for i := range bruteOut.data {
		if math.Abs(bruteOut.data[i]-linearOut.data[i]) > tol {
			t.Errorf("index %d: brute=%v linear=%v", i, bruteOut.data[i], linearOut.data[i])
		}
	}
}

func TestBatchComputeEmpty(t *testing.T) {
	out, err := BatchCompute(context.Background(), nil, DefaultConfig(), 4)
	if err != nil {
		t.Fatal(err)
	}
	if out != nil {
		t.Errorf("expected nil results for empty batch, got %v", out)
	}
}

func TestBatchComputeRunsAllGrids(t *testing.T) {
	imgs := []*BooleanGrid{
		gridFromPattern([]string{"...", ".#.", "..."}),
		gridFromPattern([]string{"....", ".##.", ".##.", "...."}),
		gridFromPattern([]string{".....", "....."}),
	}
	out, err := BatchCompute(context.Background(), imgs, DefaultConfig(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(imgs) {
		t.Fatalf("got %d results, want %d", len(out), len(imgs))
	}
	for i, g := range out {
		if g == nil {
			t.Errorf("result %d is nil", i)
		}
	}
}

func TestBatchComputePropagatesEngineError(t *testing.T) {
	imgs := []*BooleanGrid{
		{w: 0, h: 3},
	}
	if _, err := BatchCompute(context.Background(), imgs, DefaultConfig(), 1); err == nil {
		t.Error("expected propagated dimension error")
	}
}

func TestBatchComputeRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	imgs := []*BooleanGrid{
		gridFromPattern([]string{"...", ".#.", "..."}),
	}
	if _, err := BatchCompute(ctx, imgs, DefaultConfig(), 1); err == nil {
		t.Error("expected cancellation error")
	}
}
