package utils

import "math"

// GenerateConstantBlock returns a block of size samples all set to amplitude.
func GenerateConstantBlock(size int, amplitude float32) []float32 {
	block := make([]float32, size)
	for i := range block {
		block[i] = amplitude
	}
	return block
}

// GenerateSineWave returns a sine block at the given frequency and peak
// amplitude, sampled at sampleRate.
func GenerateSineWave(size int, sampleRate, frequency, amplitude float64) []float32 {
	block := make([]float32, size)
	for i := range block {
		t := float64(i) / sampleRate
		block[i] = float32(math.Sin(2*math.Pi*frequency*t) * amplitude)
	}
	return block
}

// ScaleBlock returns a copy of block with every sample multiplied by k.
func ScaleBlock(block []float32, k float32) []float32 {
	scaled := make([]float32, len(block))
	for i, v := range block {
		scaled[i] = v * k
	}
	return scaled
}
