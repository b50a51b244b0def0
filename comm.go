package main

// The coordinator always lives on rank 0.
const coordinatorRank = 0

// Comm is the point-to-point transport a role runs on. Every transfer
// is a length prefix followed by the data, and both sides block until
// the peer shows up, MPI style: no timeouts, no errors. A missing peer
// blocks forever.
type Comm interface {
	Rank() int
	Size() int

	// SendVector transfers the element count, then the elements.
	SendVector(vals []float64, to int)

	// RecvVector receives a count, then exactly that many elements.
	RecvVector(from int) []float64
}

// pairTag is the tag for any message between the coordinator and a
// worker: the worker's rank, on both directions of the link. Exchanges
// with different workers therefore never cross.
func pairTag(a, b int) int {
	if a == coordinatorRank {
		return b
	}
	return a
}
