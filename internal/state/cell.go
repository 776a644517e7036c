// SPDX-License-Identifier: MIT
/*
Package state holds the one piece of data shared between the audio callback
and the render loop: the current visual state index.

The cell is a single-slot, overwrite-always channel. The audio callback is
the only writer; the render loop reads it once per frame. There is no
queueing: values written between two reads are lost, which is intentional —
the renderer only cares about the current state, not its history. Readers may
observe a slightly stale index relative to wall-clock time, but never a torn
or partially written one.
*/
package state

import "sync/atomic"

// Cell is a lock-free single-producer, multi-consumer slot holding a visual
// state index. The zero value is ready to use and reads as 0, matching the
// quiet state before any audio block has been processed.
type Cell struct {
	v atomic.Uint32
}

// NewCell returns a cell initialized to index 0.
func NewCell() *Cell {
	return &Cell{}
}

// Store overwrites the current index. Called from the audio callback;
// wait-free, no allocation.
func (c *Cell) Store(index uint32) {
	c.v.Store(index)
}

// Load returns the most recently observed index. Called from the render
// loop; wait-free, no allocation.
func (c *Cell) Load() uint32 {
	return c.v.Load()
}
