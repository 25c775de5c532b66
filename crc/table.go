package crc

import "github.com/nickolajgrishuk/gocrc/crc/internal/bits"

// tableSet holds the N 256-entry lookup tables used by slice-by-N
// processing for one lane count N. lanes[0] is the single-byte table
// (the classic Sarwate table); lanes[k] holds the contribution of a
// byte positioned k bytes earlier in the stream.
type tableSet struct {
	lanes [][256]uint64
}

// buildTables constructs an N-lane table set for a canonicalized
// (width, poly, refin) triple. lane 0 is the classic single-byte
// (Sarwate) table, built by filling the eight power-of-two indices via
// single-bit polynomial division and synthesizing every composite
// index as the XOR of two entries whose indices XOR to it. Each
// further lane k folds one more zero byte through lane k-1, for every
// entry: lane[k][v] is the register state left by processing byte v
// followed by k zero bytes. Processing an N-byte chunk then combines
// chunk byte j (and, while the register still has a byte at that
// position, the pre-chunk register's byte j) through lane[N-1-j] — the
// last chunk byte needs no further folding and lands in lane 0, the
// first chunk byte has the most folding left and lands in the highest
// lane.
func buildTables(width uint8, poly uint64, refin bool, lanes int) *tableSet {
	ts := &tableSet{lanes: make([][256]uint64, lanes)}
	ts.lanes[0] = buildByteTable(width, poly, refin)

	for k := 1; k < lanes; k++ {
		prev := ts.lanes[k-1]
		var table [256]uint64
		for v := 0; v < 256; v++ {
			table[v] = foldZeroByte(prev[v], ts.lanes[0], width, refin)
		}
		ts.lanes[k] = table
	}
	return ts
}

// buildByteTable constructs the plain single-byte lookup table: table[v]
// is the register state, starting from zero, after processing the one
// byte v.
func buildByteTable(width uint8, poly uint64, refin bool) [256]uint64 {
	var table [256]uint64

	var r uint64
	if refin {
		r = 1
	} else {
		r = uint64(1) << (width - 1)
	}
	rpoly := bits.Reflect(poly, width)

	for i := 0; i < 8; i++ {
		if refin {
			bit0 := r&1 != 0
			r >>= 1
			if bit0 {
				r ^= rpoly
			}
			table[1<<(7-i)] = r
		} else {
			top := r&(uint64(1)<<(width-1)) != 0
			r <<= 1
			if top {
				r ^= poly
			}
			table[1<<i] = r
		}
	}
	for i := 2; i < 256; i <<= 1 {
		for j := 1; j < i; j++ {
			table[i^j] = table[i] ^ table[j]
		}
	}
	return table
}

// foldZeroByte advances register state r through one more zero byte,
// using byteTable (lane 0) as the single-byte step function.
func foldZeroByte(r uint64, byteTable [256]uint64, width uint8, refin bool) uint64 {
	if refin {
		idx := byte(r)
		return (r >> 8) ^ byteTable[idx]
	}
	idx := byte(r >> (width - 8))
	return ((r << 8) ^ byteTable[idx]) & bits.Mask(width)
}

// buildFold computes the 64-entry folding-constant array: fold[i] =
// x^(8*2^i) mod P, represented in the canonicalized (width, poly,
// refin) form. fold[0] is computed directly by running the canonical
// single-bit division for 8 steps; every later entry is the square
// (via carryless multiplication mod P) of the previous one. The seed
// is the field's multiplicative identity, which differs by
// convention: for non-reflected input it's the polynomial "1"; for
// reflected input, where the register holds bit-reversed coefficients,
// it's the top bit, 1<<(width-1).
func buildFold(width uint8, poly uint64, refin bool) [64]uint64 {
	var f [64]uint64

	var r uint64
	if refin {
		r = uint64(1) << (width - 1)
		rpoly := bits.Reflect(poly, width)
		for i := 0; i < 8; i++ {
			bit0 := r&1 != 0
			r >>= 1
			if bit0 {
				r ^= rpoly
			}
		}
	} else {
		r = uint64(1)
		for i := 0; i < 8; i++ {
			top := r&(uint64(1)<<(width-1)) != 0
			r <<= 1
			if top {
				r ^= poly
			}
		}
	}
	f[0] = r & bits.Mask(width)

	for i := 1; i < len(f); i++ {
		f[i] = bits.ClmulMod(f[i-1], f[i-1], poly, width, refin)
	}
	return f
}

// tables returns the lane-count-N table set for c, building and
// caching it on first use. Safe for concurrent first use from multiple
// goroutines: tablesMu is held across the lookup and the build, so a
// caller racing to build the same lane count waits and then reuses the
// first caller's table set.
func (c *CRC) tables(lanes int) *tableSet {
	c.tablesMu.Lock()
	defer c.tablesMu.Unlock()
	if ts, ok := c.tableCache[lanes]; ok {
		return ts
	}
	ts := buildTables(c.p.canonWidth(), c.p.canonPoly(), c.p.RefIn, lanes)
	c.tableCache[lanes] = ts
	return ts
}

// foldConstants returns c's folding-constant array, building and
// caching it on first use.
func (c *CRC) foldConstants() [64]uint64 {
	c.foldOnce.Do(func() {
		c.fold = buildFold(c.p.canonWidth(), c.p.canonPoly(), c.p.RefIn)
	})
	return c.fold
}
