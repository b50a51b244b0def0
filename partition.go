package main

// ChunkSizes splits n elements over workers contiguous chunks: every
// chunk gets n/workers elements and the last one also absorbs the
// remainder. With n < workers that leaves most chunks empty and the
// whole sequence on the last rank.
func ChunkSizes(n, workers int) []int {
	if workers <= 0 {
		return nil
	}
	base := n / workers
	sizes := make([]int, workers)
	for i := range sizes {
		sizes[i] = base
	}
	sizes[workers-1] = n - base*(workers-1)
	return sizes
}

// SplitChunks cuts seq into the chunks ChunkSizes prescribes, in order.
// The chunks alias seq.
func SplitChunks(seq []float64, workers int) [][]float64 {
	sizes := ChunkSizes(len(seq), workers)
	chunks := make([][]float64, len(sizes))
	start := 0
	for i, size := range sizes {
		chunks[i] = seq[start : start+size]
		start += size
	}
	return chunks
}
