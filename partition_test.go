package main

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkSizesWorkedExample(t *testing.T) {
	// 16 elements over 3 workers: 5, 5 and the last absorbs the rest.
	assert.Equal(t, []int{5, 5, 6}, ChunkSizes(16, 3))
}

func TestChunkSizesExactSplit(t *testing.T) {
	assert.Equal(t, []int{4, 4, 4}, ChunkSizes(12, 3))
}

func TestChunkSizesFewerElementsThanWorkers(t *testing.T) {
	// base is zero, so the whole sequence lands on the last rank.
	assert.Equal(t, []int{0, 0, 0, 0, 2}, ChunkSizes(2, 5))
}

func TestChunkSizesEmptySequence(t *testing.T) {
	assert.Equal(t, []int{0, 0, 0}, ChunkSizes(0, 3))
}

func TestChunkSizesNoWorkers(t *testing.T) {
	assert.Nil(t, ChunkSizes(10, 0))
}

func TestSplitChunksBoundaries(t *testing.T) {
	seq := make([]float64, 16)
	for i := range seq {
		seq[i] = float64(i)
	}

	chunks := SplitChunks(seq, 3)
	require.Len(t, chunks, 3)
	assert.Equal(t, seq[0:5], chunks[0])
	assert.Equal(t, seq[5:10], chunks[1])
	assert.Equal(t, seq[10:16], chunks[2])
}

func TestChunkSizesProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("sizes sum to n", prop.ForAll(
		func(n, workers int) bool {
			sizes := ChunkSizes(n, workers)
			total := 0
			for _, size := range sizes {
				total += size
			}
			return len(sizes) == workers && total == n
		},
		gen.IntRange(0, 5000),
		gen.IntRange(1, 64),
	))

	properties.Property("all but the last chunk get the floor share", prop.ForAll(
		func(n, workers int) bool {
			sizes := ChunkSizes(n, workers)
			base := n / workers
			for _, size := range sizes[:workers-1] {
				if size != base {
					return false
				}
			}
			return sizes[workers-1] >= base
		},
		gen.IntRange(0, 5000),
		gen.IntRange(1, 64),
	))

	properties.TestingRun(t)
}
