// Package crc implements a parameterized cyclic redundancy check
// engine: slice-by-N table processing, carryless-multiplication
// algebra for zero-byte skipping, combining, and parallel folding, and
// a catalogue of predefined CRCs.
//
// Defining a CRC (New/MustNew) does no table-building work; lookup
// tables and folding constants are built lazily, on first use, and
// cached for the lifetime of the *CRC.
package crc

import (
	"iter"
	"sync"
)

// CRC is an immutable, validated CRC parameterization plus its lazily
// built, process-wide lookup tables and folding constants.
type CRC struct {
	p Params

	tablesMu   sync.Mutex
	tableCache map[int]*tableSet

	foldOnce    sync.Once
	fold        [64]uint64
	residueOnce sync.Once
	residueVal  uint64
}

// New validates p and returns a *CRC, or an error if p is not a valid
// parameterization (width out of range, or Poly/Init/XorOut not
// fitting in Width bits).
func New(p Params) (*CRC, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &CRC{p: p, tableCache: make(map[int]*tableSet)}, nil
}

// MustNew is like New but panics on an invalid Params. Intended for
// package-level definitions (the catalogue) where an invalid
// parameterization is a programmer error, not a runtime condition.
func MustNew(p Params) *CRC {
	c, err := New(p)
	if err != nil {
		panic(err)
	}
	return c
}

// Params returns the parameterization this CRC was constructed from.
func (c *CRC) Params() Params { return c.p }

// NewState returns the canonical initial state for this CRC.
func (c *CRC) NewState() State {
	return State{crc: c, reg: c.p.canonInit()}
}

// NewZeroState returns the zero state for this CRC, the identity
// element of Combine. It is not a valid starting point for Finalize
// unless later combined with a state descended from NewState.
func (c *CRC) NewZeroState() State {
	return State{crc: c, reg: 0}
}

// Compute is the convenience operation finalize(process(algo,
// NewState(), data)). The zero Algorithm selects DefaultAlgorithm.
func (c *CRC) Compute(algo Algorithm, data []byte) uint64 {
	return Finalize(Process(algo, c.NewState(), data))
}

// ComputeSeq is Compute's non-random-access counterpart, for a
// pull-based byte sequence such as one produced by bufio.Scanner or a
// filtered/transformed iterator.
func (c *CRC) ComputeSeq(seq iter.Seq[byte]) uint64 {
	return Finalize(ProcessSeq(c.NewState(), seq))
}

// IsValidBytes reports whether data — a message with its own encoded
// CRC appended as a trailer — is internally consistent.
func (c *CRC) IsValidBytes(algo Algorithm, data []byte) bool {
	return IsValid(Process(algo, c.NewState(), data))
}
