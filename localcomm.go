package main

// localComm is one rank of an in-process cluster. Each ordered pair of
// ranks gets its own unbuffered channel, so a link delivers vectors in
// send order and a receive blocks until the matching send, the same
// rendezvous semantics the MPI transport has. The count and the data
// ride the channel as one vector.
type localComm struct {
	rank  int
	size  int
	links [][]chan []float64 // links[from][to]
}

// NewLocalCluster wires size ranks together and returns one comm per
// rank, index = rank.
func NewLocalCluster(size int) []*localComm {
	links := make([][]chan []float64, size)
	for from := range links {
		links[from] = make([]chan []float64, size)
		for to := range links[from] {
			links[from][to] = make(chan []float64)
		}
	}

	comms := make([]*localComm, size)
	for rank := range comms {
		comms[rank] = &localComm{rank: rank, size: size, links: links}
	}
	return comms
}

func (l *localComm) Rank() int { return l.rank }
func (l *localComm) Size() int { return l.size }

func (l *localComm) SendVector(vals []float64, to int) {
	l.links[l.rank][to] <- vals
}

func (l *localComm) RecvVector(from int) []float64 {
	return <-l.links[from][l.rank]
}
