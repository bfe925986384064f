// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdf

import (
	"errors"
	"math"
	"testing"
)

func TestBrushfireInvalidDimensions(t *testing.T) {
	g := &BooleanGrid{w: 0, h: 5}
	if _, err := Brushfire(g, false, DefaultConfig()); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestBrushfireUniformIsZero(t *testing.T) {
	g := NewBooleanGrid(3, 3)
	out, err := Brushfire(g, false, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	for i := range out.data {
		if out.data[i] != 0 {
			t.Fatalf("uniform grid produced non-zero at index %d", i)
		}
	}
}

func TestBrushfireSourceCellsAreZero(t *testing.T) {
	g := gridFromPattern([]string{
		"...",
		".#.",
		"...",
	})
	out, err := Brushfire(g, false, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if out.At(1, 1) != 0 {
		t.Errorf("source cell: got %v, want 0", out.At(1, 1))
	}
}

func TestBrushfireMatchesBruteSDF(t *testing.T) {
	g := gridFromPattern([]string{
		"..........",
		".####.....",
		".####.....",
		".####.....",
		".####.....",
		".........#",
		"..........",
		"...##.....",
		"...##.....",
		"..........",
	})

	brute, err := Brute(g, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.Engine = EngineBrushfire
	bf, err := SignedDistanceField(g, cfg)
	if err != nil {
		t.Fatal(err)
	}

	tol := 1e-9 * float64(g.w+g.h)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			want := brute.At(x, y)
			got := bf.At(x, y)
			if math.Abs(got-want) > tol {
				t.Errorf("at (%d,%d): brushfire=%v want brute=%v", x, y, got, want)
			}
		}
	}
}

func TestBrushfireMultiQueueMatchesSingleQueue(t *testing.T) {
	g := gridFromPattern([]string{
		".....................",
		".###.................",
		".###......#####......",
		".###......#####......",
		"..........#####......",
		".....................",
		"......###............",
		"......###....#.......",
		"......###............",
		".....................",
	})

	single := DefaultConfig()
	single.BrushfireVariant = SingleQueue
	single.Parallel = false
	singleOut, err := Brushfire(g, false, single)
	if err != nil {
		t.Fatal(err)
	}

	multi := DefaultConfig()
	multi.BrushfireVariant = MultiQueuePolar
	multi.Parallel = true
	multiOut, err := Brushfire(g, false, multi)
	if err != nil {
		t.Fatal(err)
	}

	const tol = 1e-9
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if math.Abs(singleOut.At(x, y)-multiOut.At(x, y)) > tol {
				t.Errorf("at (%d,%d): single=%v multi=%v", x, y, singleOut.At(x, y), multiOut.At(x, y))
			}
		}
	}
}

func TestBrushfireCancellation(t *testing.T) {
	g := NewBooleanGrid(200, 200)
	g.Set(100, 100, true)
	var flag int32 = 1
	cfg := DefaultConfig()
	cfg.Parallel = false
	cfg.CancelFlag = &flag
	out, err := Brushfire(g, false, cfg)
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
	if out == nil {
		t.Fatal("expected partial output, got nil")
	}
}
