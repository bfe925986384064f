// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !amd64
// +build !amd64

package sdf

// hasAVX2 always reports false on non-amd64 architectures.
func hasAVX2() bool {
	return false
}
