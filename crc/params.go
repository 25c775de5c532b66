package crc

import (
	"fmt"

	"github.com/nickolajgrishuk/gocrc/crc/internal/bits"
)

// Params captures a CRC definition: the generator polynomial, the
// initial register value, the input/output reflection flags, and the
// final XOR mask. It fully determines a parameterization; two Params
// with the same six fields describe the same CRC.
type Params struct {
	// Width is the CRC width in bits, 1 <= Width <= 64.
	Width uint8
	// Poly is the generator polynomial, W bits wide. The implicit
	// leading x^W term is not stored.
	Poly uint64
	// Init is the register's initial value, W bits wide.
	Init uint64
	// RefIn selects LSb-first ("reflected") byte ingestion.
	RefIn bool
	// RefOut selects whether the finalized payload is bit-reflected
	// relative to the register's natural orientation.
	RefOut bool
	// XorOut is XORed into the register at finalization, W bits wide.
	XorOut uint64
	// Name is an optional human-readable identifier, used by ByName
	// and by error/debug output. It does not participate in equality.
	Name string
}

func (p Params) validate() error {
	if p.Width == 0 || p.Width > 64 {
		return fmt.Errorf("gocrc: width %d out of range [1, 64]", p.Width)
	}
	m := bits.Mask(p.Width)
	if p.Poly&^m != 0 {
		return fmt.Errorf("gocrc: poly 0x%X does not fit in %d bits", p.Poly, p.Width)
	}
	if p.Init&^m != 0 {
		return fmt.Errorf("gocrc: init 0x%X does not fit in %d bits", p.Init, p.Width)
	}
	if p.XorOut&^m != 0 {
		return fmt.Errorf("gocrc: xorout 0x%X does not fit in %d bits", p.XorOut, p.Width)
	}
	return nil
}

// canonWidth and canonPoly return the width/poly pair actually used by
// the table and folding-constant construction: sub-byte non-reflected
// CRCs are internally widened to 8 bits so a full byte can always be
// looked up a table row at a time.
func (p Params) canonWidth() uint8 {
	if p.Width < 8 && !p.RefIn {
		return 8
	}
	return p.Width
}

func (p Params) canonPoly() uint64 {
	if p.Width < 8 && !p.RefIn {
		return p.Poly << (8 - p.Width)
	}
	return p.Poly
}

// canonInit returns the register's canonical starting value in the
// same internal orientation canonWidth/canonPoly use.
func (p Params) canonInit() uint64 {
	switch {
	case p.RefIn:
		return bits.Reflect(p.Init, p.Width)
	case p.Width < 8:
		return p.Init << (8 - p.Width)
	default:
		return p.Init
	}
}
