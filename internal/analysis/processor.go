// SPDX-License-Identifier: MIT
package analysis

// SampleProcessor is the interface for components consuming audio sample
// blocks. Process is called from within the real-time audio callback once per
// arriving block, so implementations must be fast, must not block, and must
// not allocate unboundedly.
type SampleProcessor interface {
	// Process analyzes one block of float32 samples. Multi-channel data
	// arrives as an interleaved flat sequence.
	Process(block []float32)
}
