// SPDX-License-Identifier: MIT
package audio

import (
	"testing"

	"audiovis/pkg/utils"
)

// blockRecorder captures the blocks handed to it by the engine callback.
type blockRecorder struct {
	blocks [][]float32
}

func (r *blockRecorder) Process(block []float32) {
	copied := make([]float32, len(block))
	copy(copied, block)
	r.blocks = append(r.blocks, copied)
}

// The callback must forward each arriving block to the processor verbatim,
// without reslicing or reordering.
func TestProcessInputStreamForwardsBlocks(t *testing.T) {
	t.Parallel()
	rec := &blockRecorder{}
	engine := &Engine{processor: rec}

	first := utils.GenerateSineWave(256, 44100, 440, 0.5)
	second := utils.GenerateConstantBlock(128, 0.1)
	engine.processInputStream(first)
	engine.processInputStream(second)

	if len(rec.blocks) != 2 {
		t.Fatalf("processor saw %d blocks, want 2", len(rec.blocks))
	}
	for i, want := range [][]float32{first, second} {
		got := rec.blocks[i]
		if len(got) != len(want) {
			t.Fatalf("block %d: got %d samples, want %d", i, len(got), len(want))
		}
		for j := range want {
			if got[j] != want[j] {
				t.Fatalf("block %d sample %d: got %g, want %g", i, j, got[j], want[j])
			}
		}
	}
}

// countingProcessor is allocation-free, so any allocation measured here
// belongs to the engine's callback path.
type countingProcessor struct {
	calls int
}

func (p *countingProcessor) Process(block []float32) { p.calls++ }

func TestProcessInputStreamHotPathAllocations(t *testing.T) {
	proc := &countingProcessor{}
	engine := &Engine{processor: proc}
	block := utils.GenerateConstantBlock(512, 0.2)

	allocs := testing.AllocsPerRun(100, func() {
		engine.processInputStream(block)
	})
	if allocs > 0 {
		t.Errorf("expected zero allocations in callback, got %.1f", allocs)
	}
	if proc.calls == 0 {
		t.Error("processor was never invoked")
	}
}

func TestStopInputStreamWithoutStream(t *testing.T) {
	t.Parallel()
	engine := &Engine{}
	if err := engine.StopInputStream(); err != nil {
		t.Errorf("StopInputStream on idle engine: %v", err)
	}
	if err := engine.Close(); err != nil {
		t.Errorf("Close on idle engine: %v", err)
	}
}
