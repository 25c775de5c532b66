package crc

import "github.com/nickolajgrishuk/gocrc/crc/internal/bits"

// Finalize extracts the checksum value from a processed state: the
// canonical register is narrowed back out of its widened or
// reflected-at-ingestion form, optionally output-reflected, and
// XORed with XorOut.
func Finalize(s State) uint64 {
	c := s.crc
	p := c.p
	r := s.reg

	if p.Width < 8 && !p.RefIn {
		r >>= 8 - p.Width
	}
	if p.RefIn != p.RefOut {
		r = bits.Reflect(r, p.Width)
	}
	return (r ^ p.XorOut) & bits.Mask(p.Width)
}

// residue is the register value that processing a well-formed message
// immediately followed by its own encoded checksum trailer drives the
// register to, regardless of the message: the value IsValid compares
// against. It is derived, once per *CRC, by simulating the empty
// message: Finalize(NewState()) is the checksum of no data at all, and
// appending that checksum's own ceil(Width/8)-byte encoding (ordered to
// match RefOut, matching how a trailer is conventionally serialized)
// back through Process from NewState reproduces exactly the state a
// real message-plus-trailer stream converges to.
func (c *CRC) residue() uint64 {
	c.residueOnce.Do(func() {
		trailer := Finalize(c.NewState())
		nbytes := int(c.p.Width+7) / 8
		buf := make([]byte, nbytes)
		for i := 0; i < nbytes; i++ {
			shift := 8 * i
			if !c.p.RefOut {
				shift = 8 * (nbytes - 1 - i)
			}
			buf[i] = byte(bits.RShift(trailer, shift))
		}
		c.residueVal = Process(SliceBy(1), c.NewState(), buf).reg
	})
	return c.residueVal
}

// IsValid reports whether s is the state reached by processing a
// message immediately followed by its own correctly encoded checksum:
// equivalently, whether s's register equals the CRC's residue.
func IsValid(s State) bool {
	return s.reg == s.crc.residue()
}
