// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdf

import (
	"sync/atomic"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Engine != EngineLinear {
		t.Errorf("default Engine = %v, want EngineLinear", cfg.Engine)
	}
	if !cfg.Parallel {
		t.Error("default Parallel = false, want true")
	}
	if cfg.BrushfireVariant != SingleQueue {
		t.Errorf("default BrushfireVariant = %v, want SingleQueue", cfg.BrushfireVariant)
	}
	if cfg.CancelFlag != nil {
		t.Error("default CancelFlag should be nil")
	}
}

func TestCancelCheckerNilFlag(t *testing.T) {
	cc := newCancelChecker(Config{})
	if cc.cancelled() {
		t.Error("nil CancelFlag should never report cancelled")
	}
}

func TestCancelCheckerSetFlag(t *testing.T) {
	var flag int32
	cc := newCancelChecker(Config{CancelFlag: &flag})
	if cc.cancelled() {
		t.Error("zero flag should not report cancelled")
	}
	atomic.StoreInt32(&flag, 1)
	if !cc.cancelled() {
		t.Error("non-zero flag should report cancelled")
	}
}
