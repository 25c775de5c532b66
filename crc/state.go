package crc

import "github.com/nickolajgrishuk/gocrc/crc/internal/bits"

// State is an opaque CRC register value. It is produced by
// CRC.NewState/CRC.NewZeroState, advanced by Process/ProcessSeq/
// ProcessZeroBytes/Combine, and consumed by Finalize/IsValid. States
// are value types: every processor takes one by value and returns a
// new one, never mutating the receiver.
type State struct {
	crc *CRC
	reg uint64
}

// Equal reports whether s and o hold the same parameterization and
// agree in their lower-Width bits (or all bits, for a reflected
// parameterization, where the canonical form already lives in the low
// bits and any higher garbage cannot arise). States of different
// parameterizations are never equal.
func (s State) Equal(o State) bool {
	if s.crc != o.crc {
		return false
	}
	if s.crc.p.RefIn {
		return s.reg == o.reg
	}
	// Non-reflected sub-byte CRCs keep their register top-aligned in an
	// 8-bit-wide canonical form until Finalize; the comparable bits live
	// in the top Width bits of that byte, not the low Width bits.
	shift := uint8(0)
	if s.crc.p.Width < 8 {
		shift = 8 - s.crc.p.Width
	}
	m := bits.Mask(s.crc.p.Width) << shift
	return s.reg&m == o.reg&m
}

func mustSameCRC(a, b *CRC) *CRC {
	if a != b {
		panic("gocrc: states belong to different parameterizations")
	}
	return a
}
