package main

import (
	mpi "github.com/sbromberger/gompi"
)

// mpiComm runs the exchange over OpenMPI via gompi.
type mpiComm struct {
	comm *mpi.Communicator
}

func NewMPIComm(comm *mpi.Communicator) *mpiComm {
	return &mpiComm{comm: comm}
}

func (m *mpiComm) Rank() int { return m.comm.Rank() }
func (m *mpiComm) Size() int { return m.comm.Size() }

// The count travels as a one-element slice ahead of the payload. An
// empty vector is only the count; both sides skip the data transfer,
// since MPI buffers cannot be zero-length.
func (m *mpiComm) SendVector(vals []float64, to int) {
	tag := pairTag(m.Rank(), to)
	m.comm.SendInt32s([]int32{int32(len(vals))}, to, tag)
	if len(vals) > 0 {
		m.comm.SendFloat64s(vals, to, tag)
	}
}

func (m *mpiComm) RecvVector(from int) []float64 {
	tag := pairTag(m.Rank(), from)
	counts, _ := m.comm.RecvInt32s(from, tag)
	if counts[0] == 0 {
		return nil
	}
	vals, _ := m.comm.RecvFloat64s(from, tag)
	return vals
}
