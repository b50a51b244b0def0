package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Role is what one rank does for the lifetime of a run. The role is
// picked once at startup from the rank; the phase logic itself never
// branches on it.
type Role interface {
	Run() error
}

// Coordinator is rank 0. It gathers every worker's batch, repartitions
// the combined sequence into balanced chunks, hands those back out, and
// reassembles the computed results in rank order.
type Coordinator struct {
	comm Comm
	cfg  Config
	out  io.Writer

	// Result is the final sequence after the third phase, ordered by
	// worker rank.
	Result []float64

	stats []rankStats
}

type rankStats struct {
	contributed int
	assigned    int
	returned    int
}

func NewCoordinator(comm Comm, cfg Config, out io.Writer) *Coordinator {
	return &Coordinator{comm: comm, cfg: cfg, out: out}
}

func (c *Coordinator) Run() error {
	workers := c.comm.Size() - 1
	c.stats = make([]rankStats, workers)
	fmt.Fprintf(c.out, "Number of ranks = %d\n\n", c.comm.Size())

	banner := color.New(color.FgYellow)

	banner.Fprintf(c.out, "Collecting angles from %d workers\n", workers)
	all := c.collect(workers)

	banner.Fprintf(c.out, "Redistributing %d angles\n", len(all))
	c.scatter(SplitChunks(all, workers))

	banner.Fprintf(c.out, "Gathering results\n")
	c.Result = c.gather(workers)

	fmt.Fprintf(c.out, "Final vector (%d): ", len(c.Result))
	if !c.cfg.Quiet {
		for _, v := range c.Result {
			fmt.Fprintf(c.out, "%v ", v)
		}
	}
	fmt.Fprintln(c.out)
	c.report()
	return nil
}

// collect receives each worker's contribution, strictly in ascending
// rank order, and concatenates them. Receipt order is rank order no
// matter when each worker actually sent.
func (c *Coordinator) collect(workers int) []float64 {
	var all []float64
	for rank := 1; rank <= workers; rank++ {
		vals := c.comm.RecvVector(rank)
		c.stats[rank-1].contributed = len(vals)
		fmt.Fprintf(c.out, "Received no. of angles = %d from rank %d\n", len(vals), rank)
		if !c.cfg.Quiet {
			fmt.Fprintf(c.out, "Received vector: %v\n\n", vals)
		}
		all = append(all, vals...)
	}
	return all
}

func (c *Coordinator) scatter(chunks [][]float64) {
	for i, chunk := range chunks {
		c.stats[i].assigned = len(chunk)
		c.comm.SendVector(chunk, i+1)
	}
}

func (c *Coordinator) gather(workers int) []float64 {
	var result []float64
	for rank := 1; rank <= workers; rank++ {
		vals := c.comm.RecvVector(rank)
		c.stats[rank-1].returned = len(vals)
		result = append(result, vals...)
	}
	return result
}
