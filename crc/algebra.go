package crc

import "github.com/nickolajgrishuk/gocrc/crc/internal/bits"

// ProcessZeroBytes advances s as if n zero bytes had been processed,
// in O(log n) time via the folding-constant array instead of O(n)
// single-byte steps: n is decomposed into its set bits, and for each
// set bit i the register is carryless-multiplied by fold[i] = x^(8*2^i)
// mod P.
func ProcessZeroBytes(s State, n uint64) State {
	c := s.crc
	if n == 0 {
		return s
	}
	fold := c.foldConstants()
	width := c.p.canonWidth()
	poly := c.p.canonPoly()
	refin := c.p.RefIn

	r := s.reg
	for i := 0; n != 0; i, n = i+1, n>>1 {
		if n&1 == 0 {
			continue
		}
		r = bits.ClmulMod(r, fold[i], poly, width, refin)
	}
	return State{crc: c, reg: r}
}

// Combine XORs two registers of the same parameterization. CRC is
// linear over GF(2): if a and b are each zero-padded out to the same
// total length in complementary, non-overlapping byte positions, the
// CRC of their XOR equals the CRC of the combined message. a and b
// must already be aligned to that common length — callers reach for
// ProcessZeroBytes first to align a partial state to the position its
// neighbor needs — Combine itself performs no shifting. a and b must
// share the same *CRC; Combine panics otherwise.
func Combine(a, b State) State {
	c := mustSameCRC(a.crc, b.crc)
	return State{crc: c, reg: a.reg ^ b.reg}
}
