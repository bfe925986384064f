// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdf

import (
	"container/heap"
	"math"
)

// WavefrontNode is an immutable record (x, y, dx, dy) used as a priority
// queue key during brushfire propagation. (x,y) are integer cell
// coordinates; (dx,dy) is the real-valued offset from the nearest seed to
// (x,y), in cell units. Its priority is sqrt(dx²+dy²). Equality and
// hashing consider only (x,y): two nodes sharing a cell but carrying
// different offsets are the same queue entry with different priorities.
type WavefrontNode struct {
	X, Y   int
	DX, DY float64
}

// priority returns the Euclidean norm of the node's offset vector.
func (n WavefrontNode) priority() float64 {
	return math.Sqrt(n.DX*n.DX + n.DY*n.DY)
}

// cellKey packs (x,y) into a single comparable map key.
func (n WavefrontNode) cellKey() int64 {
	return int64(n.Y)<<32 | int64(uint32(n.X))
}

// wavefrontItem is one entry in the decrease-key priority queue: a node
// plus its position in the backing heap, kept in sync by Swap so that
// heap.Fix can be called in O(log n) when a cell's priority improves.
type wavefrontItem struct {
	node  WavefrontNode
	index int
}

// wavefrontQueue is a decrease-key priority queue keyed on cell (x,y).
// Inserting a node for a cell already present updates the stored node
// only if the new priority is strictly lower; a higher-priority insert is
// a no-op. This follows the classic "insert-or-improve" shape for a
// decrease-key queue (container/heap.Interface plus an index-tracking
// Swap), with the improvement direction reversed: here lower priority
// wins. Closed-cell
// filtering is the caller's responsibility (brushfire.go consults its own
// closedSet before pushing or after popping), since whether a cell is
// closed depends on propagation state the queue itself doesn't track.
type wavefrontQueue struct {
	items  []*wavefrontItem
	byCell map[int64]*wavefrontItem
}

func newWavefrontQueue(capacityHint int) *wavefrontQueue {
	return &wavefrontQueue{
		items:  make([]*wavefrontItem, 0, capacityHint),
		byCell: make(map[int64]*wavefrontItem, capacityHint),
	}
}

// push inserts node, or improves the priority of its cell's existing
// entry if node's priority is strictly lower.
func (q *wavefrontQueue) push(node WavefrontNode) {
	key := node.cellKey()
	if existing, ok := q.byCell[key]; ok {
		if node.priority() < existing.node.priority() {
			existing.node = node
			heap.Fix(q, existing.index)
		}
		return
	}
	item := &wavefrontItem{node: node}
	q.byCell[key] = item
	heap.Push(q, item)
}

// popMin extracts the globally minimum-priority node. Returns ok=false
// once the queue is empty.
func (q *wavefrontQueue) popMin() (WavefrontNode, bool) {
	if q.Len() == 0 {
		return WavefrontNode{}, false
	}
	item := heap.Pop(q).(*wavefrontItem)
	delete(q.byCell, item.node.cellKey())
	return item.node, true
}

// Implement heap.Interface for wavefrontQueue.

func (q *wavefrontQueue) Len() int { return len(q.items) }

func (q *wavefrontQueue) Less(i, j int) bool {
	return q.items[i].node.priority() < q.items[j].node.priority()
}

func (q *wavefrontQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].index = i
	q.items[j].index = j
}

func (q *wavefrontQueue) Push(x interface{}) {
	item := x.(*wavefrontItem)
	item.index = len(q.items)
	q.items = append(q.items, item)
}

func (q *wavefrontQueue) Pop() interface{} {
	old := q.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	q.items = old[:n-1]
	return item
}
