//go:build amd64
// +build amd64

package sdf

import "golang.org/x/sys/cpu"

// hasAVX2 returns true if the CPU supports AVX2 instructions. The brute
// and linear engines scan contiguous float64 rows; auto-vectorization of
// that inner loop benefits from wider per-worker chunks on AVX2-capable
// hosts, which batchSizeHint (config.go) uses this to decide.
func hasAVX2() bool {
	return cpu.X86.HasAVX2
}
