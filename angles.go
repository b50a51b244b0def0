package main

import (
	"math"
	"math/rand"
	"time"
)

// AngleSource draws random batches of angles for one worker.
type AngleSource struct {
	rng *rand.Rand
	cfg Config
}

// NewAngleSource folds the rank into the time-based seed so workers
// started in the same instant still draw distinct streams.
func NewAngleSource(cfg Config, rank int) *AngleSource {
	return &AngleSource{
		rng: rand.New(rand.NewSource(time.Now().UnixNano() + int64(rank))),
		cfg: cfg,
	}
}

// Draw picks a batch size in [MinCount,MaxCount] and fills it with
// values in [Low,High).
func (s *AngleSource) Draw() []float64 {
	n := s.cfg.MinCount + s.rng.Intn(s.cfg.MaxCount-s.cfg.MinCount+1)
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = s.cfg.Low + s.rng.Float64()*(s.cfg.High-s.cfg.Low)
	}
	return vals
}

// Sine maps math.Sin over vals in place. The values go in as generated:
// a draw from [0,360) is NOT converted from degrees to radians.
func Sine(vals []float64) {
	for i, v := range vals {
		vals[i] = math.Sin(v)
	}
}
