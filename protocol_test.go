package main

import (
	"io"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runExchangeWith drives the full three-phase exchange over a local
// cluster, one injected contribution per worker, and returns the
// coordinator's final result.
func runExchangeWith(t *testing.T, contributions [][]float64) []float64 {
	t.Helper()

	cfg := DefaultConfig()
	cfg.Quiet = true
	comms := NewLocalCluster(len(contributions) + 1)

	var wg sync.WaitGroup
	for i, vals := range contributions {
		w := NewWorker(comms[i+1], cfg, io.Discard)
		w.draw = func() []float64 {
			return append([]float64(nil), vals...)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, w.Run())
		}()
	}

	c := NewCoordinator(comms[0], cfg, io.Discard)
	require.NoError(t, c.Run())
	wg.Wait()
	return c.Result
}

func TestExchangeWorkedExample(t *testing.T) {
	contributions := [][]float64{
		{10, 20, 30, 40, 50},
		{1, 2, 3, 4, 5, 6, 7},
		{100, 200, 300, 400},
	}

	result := runExchangeWith(t, contributions)
	require.Len(t, result, 16)

	var want []float64
	for _, vals := range contributions {
		for _, v := range vals {
			want = append(want, math.Sin(v))
		}
	}
	assert.Equal(t, want, result)
}

func TestExchangeConservation(t *testing.T) {
	cfg := DefaultConfig()
	src := NewAngleSource(cfg, 7)

	contributions := make([][]float64, 5)
	total := 0
	for i := range contributions {
		contributions[i] = src.Draw()
		total += len(contributions[i])
	}

	result := runExchangeWith(t, contributions)
	assert.Len(t, result, total)
}

func TestExchangeDeterministicOrder(t *testing.T) {
	contributions := [][]float64{
		{3, 1, 4, 1, 5},
		{9, 2, 6},
		{5, 3, 5, 8, 9, 7, 9, 3},
	}

	// The result depends only on the contributions and the rank order,
	// never on goroutine scheduling.
	first := runExchangeWith(t, contributions)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, runExchangeWith(t, contributions))
	}
}

func TestExchangeSingleWorker(t *testing.T) {
	result := runExchangeWith(t, [][]float64{{1, 2, 3}})
	assert.Equal(t, []float64{math.Sin(1), math.Sin(2), math.Sin(3)}, result)
}

func TestExchangeEmptyContributions(t *testing.T) {
	result := runExchangeWith(t, [][]float64{{}, {}, {}})
	assert.Empty(t, result)
}

func TestExchangeZeroWorkers(t *testing.T) {
	// A lone coordinator runs every phase as a no-op and must come back
	// with an empty result instead of hanging.
	cfg := DefaultConfig()
	comms := NewLocalCluster(1)

	c := NewCoordinator(comms[0], cfg, io.Discard)
	require.NoError(t, c.Run())
	assert.Empty(t, c.Result)
}

func TestLocalLinkIsFIFO(t *testing.T) {
	comms := NewLocalCluster(2)

	go func() {
		comms[1].SendVector([]float64{1}, 0)
		comms[1].SendVector([]float64{2}, 0)
	}()

	assert.Equal(t, []float64{1}, comms[0].RecvVector(1))
	assert.Equal(t, []float64{2}, comms[0].RecvVector(1))
}

func TestRunLocalTopology(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Quiet = true
	require.NoError(t, runLocal(cfg, 4))
}
