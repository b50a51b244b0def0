package main

import (
	"fmt"
	"io"
)

// Worker generates a random batch of angles, surrenders it to the
// coordinator, and computes sine over whatever balanced chunk comes
// back. The chunk it receives is in general not the batch it sent.
type Worker struct {
	comm Comm
	cfg  Config
	out  io.Writer
	draw func() []float64
}

func NewWorker(comm Comm, cfg Config, out io.Writer) *Worker {
	return &Worker{
		comm: comm,
		cfg:  cfg,
		out:  out,
		draw: NewAngleSource(cfg, comm.Rank()).Draw,
	}
}

func (w *Worker) Run() error {
	rank := w.comm.Rank()

	angles := w.draw()
	fmt.Fprintf(w.out, "Worker %d drew %d angles\n", rank, len(angles))
	if !w.cfg.Quiet {
		fmt.Fprintf(w.out, "Sent vector: %v\n", angles)
	}
	w.comm.SendVector(angles, coordinatorRank)

	chunk := w.comm.RecvVector(coordinatorRank)
	var before []float64
	if !w.cfg.Quiet {
		before = append([]float64(nil), chunk...)
	}

	Sine(chunk)

	if !w.cfg.Quiet {
		fmt.Fprintf(w.out, "Received vector by worker %d (%d): ", rank, len(chunk))
		for i, x := range before {
			fmt.Fprintf(w.out, "%v->(%v) ", x, chunk[i])
		}
		fmt.Fprintf(w.out, "\n\n")
	}

	w.comm.SendVector(chunk, coordinatorRank)
	return nil
}
