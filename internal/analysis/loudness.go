// SPDX-License-Identifier: MIT
/*
Package analysis implements the loudness detector driving the visual state.

The detector runs inside the audio callback. Per block it computes RMS
loudness over the interleaved samples, classifies the block against a fixed
threshold, and overwrites the shared state cell with the resulting index.
Classification is a pure function of the current block — there is no
smoothing or hysteresis, so a single transient sample can flip the index.
*/
package analysis

import (
	"math"
	"sync"
	"time"

	"gonum.org/v1/gonum/floats"

	"audiovis/internal/state"
)

// Detector maps audio sample blocks to a visual state index.
//
// Hot path constraints: Process runs on the audio I/O thread and must
// complete well within the device's buffer period. The float64 scratch
// buffer is grown at most a handful of times (block sizes are fixed per
// stream), after which Process is allocation-free.
type Detector struct {
	threshold float64
	states    uint32
	cell      *state.Cell
	scratch   []float64

	// lastLoud records the wall-clock time of the most recent loud
	// classification. Bookkeeping only; transitions are not gated on it.
	mu       sync.Mutex
	lastLoud time.Time
}

// NewDetector returns a detector writing indices in [0, states) to cell.
// Blocks whose RMS strictly exceeds threshold map to index 1, all others to
// index 0; both are clamped to the state bound.
func NewDetector(threshold float64, states int, cell *state.Cell) *Detector {
	if states < 1 {
		states = 1
	}
	return &Detector{
		threshold: threshold,
		states:    uint32(states),
		cell:      cell,
	}
}

// Process classifies one sample block and publishes the resulting index.
// Empty blocks are ignored.
func (d *Detector) Process(block []float32) {
	if len(block) == 0 {
		return
	}

	index := d.Classify(d.Loudness(block))
	d.cell.Store(index)

	if index != 0 {
		d.mu.Lock()
		d.lastLoud = time.Now()
		d.mu.Unlock()
	}
}

// Loudness computes the RMS of a block, treating multi-channel data as one
// flat interleaved sequence. Returns 0 for an empty block.
func (d *Detector) Loudness(block []float32) float64 {
	if len(block) == 0 {
		return 0
	}
	if cap(d.scratch) < len(block) {
		d.scratch = make([]float64, len(block))
	}
	s := d.scratch[:len(block)]
	for i, v := range block {
		s[i] = float64(v)
	}
	return math.Sqrt(floats.Dot(s, s) / float64(len(s)))
}

// Classify maps a loudness value to a state index: 1 when loudness strictly
// exceeds the threshold, 0 otherwise, clamped to the configured state count.
func (d *Detector) Classify(loudness float64) uint32 {
	var index uint32
	if loudness > d.threshold {
		index = 1
	}
	if index >= d.states {
		index = d.states - 1
	}
	return index
}

// LastLoudAt returns the wall-clock time of the most recent loud
// classification, or the zero time if none has occurred.
func (d *Detector) LastLoudAt() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastLoud
}
