package ggbench

// resultsBuffer holds the most recent FPS measurement per workload,
// index-aligned with the registry. Slots are overwritten unconditionally
// each time a window closes: last write wins, no averaging across passes.
type resultsBuffer struct {
	fps []float64
}

func newResultsBuffer(n int) *resultsBuffer {
	return &resultsBuffer{fps: make([]float64, n)}
}

func (b *resultsBuffer) record(i int, fps float64) {
	b.fps[i] = fps
}

// values returns a copy of the buffer.
func (b *resultsBuffer) values() []float64 {
	out := make([]float64, len(b.fps))
	copy(out, b.fps)
	return out
}

// snapshot32 returns the buffer as 32-bit floats for the host message
// payload.
func (b *resultsBuffer) snapshot32() []float32 {
	out := make([]float32, len(b.fps))
	for i, v := range b.fps {
		out[i] = float32(v)
	}
	return out
}
