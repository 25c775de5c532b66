package crc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Check-value vectors from the CRC RevEng catalogue: Compute("123456789")
// for each model.
func TestCatalogCheckValues(t *testing.T) {
	msg := []byte("123456789")
	cases := []struct {
		c    *CRC
		want uint64
	}{
		{CRC8, 0xf4},
		{CRC8Bluetooth, 0x26},
		{CRC16ARC, 0xbb3d},
		{CRC16Modbus, 0x4b37},
		{CRC16XModem, 0x31c3},
		{CRC16Kermit, 0x2189},
		{CRC16USB, 0xb4c8},
		{CRC10ATM, 0x199},
		{CRC32, 0xcbf43926},
		{CRC32BZIP2, 0xfc891918},
		{CRC32C, 0xe3069283},
		{CRC32MPEG2, 0x0376e6e7},
		{CRC32Q, 0x3010bf7f},
		{CRC64XZ, 0x995dc9bbdf1939fa},
		{CRC64ECMA182, 0x6c40df5f0b497347},
	}
	for _, tc := range cases {
		got := tc.c.Compute(DefaultAlgorithm, msg)
		if got != tc.want {
			t.Errorf("%s.Compute(%q) = %#x, want %#x", tc.c.p.Name, msg, got, tc.want)
		}
	}
}

func TestComputeEmptyInput(t *testing.T) {
	got := CRC32.Compute(DefaultAlgorithm, nil)
	if want := CRC32.p.Init ^ CRC32.p.XorOut; got != want {
		t.Errorf("CRC32.Compute(nil) = %#x, want %#x", got, want)
	}
}

func TestSliceByVariantsAgree(t *testing.T) {
	msg := make([]byte, 1000)
	for i := range msg {
		msg[i] = byte(i * 37)
	}
	for _, c := range []*CRC{CRC32, CRC32BZIP2, CRC16Modbus, CRC8, CRC64XZ} {
		want := c.Compute(SliceBy(1), msg)
		for _, n := range []int{2, 3, 4, 8, 16, 32} {
			got := c.Compute(SliceBy(n), msg)
			if got != want {
				t.Errorf("%s: SliceBy(%d) = %#x, want %#x (SliceBy(1))", c.p.Name, n, got, want)
			}
		}
	}
}

func TestParallelAgreesWithSerial(t *testing.T) {
	msg := make([]byte, 100000)
	for i := range msg {
		msg[i] = byte(i*13 + 7)
	}
	for _, c := range []*CRC{CRC32, CRC16Modbus, CRC64XZ} {
		want := c.Compute(SliceBy(8), msg)
		for _, workers := range []int{1, 2, 3, 7, 16} {
			got := c.Compute(ParallelN(SliceBy(8), workers), msg)
			require.Equalf(t, want, got, "%s: ParallelN(workers=%d)", c.p.Name, workers)
		}
	}
}

func TestParallelSmallInput(t *testing.T) {
	for _, n := range []int{0, 1, 3, 7} {
		msg := make([]byte, n)
		got := CRC32.Compute(Parallel(SliceBy(8)), msg)
		want := CRC32.Compute(DefaultAlgorithm, msg)
		if got != want {
			t.Errorf("len=%d: Parallel = %#x, want %#x", n, got, want)
		}
	}
}

func TestProcessSeqMatchesProcess(t *testing.T) {
	msg := []byte("the quick brown fox jumps over the lazy dog")
	want := CRC32C.Compute(DefaultAlgorithm, msg)

	seq := func(yield func(byte) bool) {
		for _, b := range msg {
			if !yield(b) {
				return
			}
		}
	}
	got := Finalize(ProcessSeq(CRC32C.NewState(), seq))
	if got != want {
		t.Errorf("ProcessSeq = %#x, want %#x", got, want)
	}
}

func TestProcessBytesInt8(t *testing.T) {
	msg := []byte("abcdefghijklmnop")
	want := CRC32.Compute(DefaultAlgorithm, msg)

	signed := make([]int8, len(msg))
	for i, b := range msg {
		signed[i] = int8(b)
	}
	got := Finalize(ProcessBytes(DefaultAlgorithm, CRC32.NewState(), signed))
	if got != want {
		t.Errorf("ProcessBytes([]int8) = %#x, want %#x", got, want)
	}
}

func TestIsValidBytes(t *testing.T) {
	msg := []byte("payload")
	chk := CRC32C.Compute(DefaultAlgorithm, msg)
	trailer := []byte{byte(chk), byte(chk >> 8), byte(chk >> 16), byte(chk >> 24)}
	full := append(append([]byte{}, msg...), trailer...)

	if !CRC32C.IsValidBytes(DefaultAlgorithm, full) {
		t.Errorf("IsValidBytes(msg+trailer) = false, want true")
	}
	full[0] ^= 0xff
	if CRC32C.IsValidBytes(DefaultAlgorithm, full) {
		t.Errorf("IsValidBytes(corrupted) = true, want false")
	}
}

func TestProcessZeroBytesLarge(t *testing.T) {
	c := CRC32
	s := c.NewState()
	s = ProcessZeroBytes(s, 1<<20)

	s2 := c.NewState()
	chunk := make([]byte, 1<<16)
	for i := 0; i < 16; i++ {
		s2 = Process(DefaultAlgorithm, s2, chunk)
	}
	if !s.Equal(s2) {
		t.Errorf("ProcessZeroBytes(2^20) disagrees with explicit zero processing")
	}
}

func TestCombineMatchesWholeMessage(t *testing.T) {
	c := CRC32C
	full := []byte("the quick brown fox jumps over the lazy dog, repeatedly")
	want := c.Compute(DefaultAlgorithm, full)

	for _, split := range []int{0, 1, 10, 30, len(full)} {
		a := Process(DefaultAlgorithm, c.NewState(), full[:split])
		aExt := ProcessZeroBytes(a, uint64(len(full)-split))
		b := Process(DefaultAlgorithm, c.NewZeroState(), full[split:])
		combined := Combine(aExt, b)
		got := Finalize(combined)
		require.Equalf(t, want, got, "split=%d", split)
	}
}

// Combine's XOR is associative and commutative regardless of how a
// three-way split is grouped, once every partial is extended with
// ProcessZeroBytes out to the shared message length.
func TestCombineAssociative(t *testing.T) {
	c := CRC32C
	full := []byte("associativity holds across any chunk grouping, always")
	i, j := 12, 40
	require.Lessf(t, i, j, "fixture split points must be ordered")

	a := Process(DefaultAlgorithm, c.NewState(), full[:i])
	b := Process(DefaultAlgorithm, c.NewZeroState(), full[i:j])
	d := Process(DefaultAlgorithm, c.NewZeroState(), full[j:])

	aExt := ProcessZeroBytes(a, uint64(len(full)-i))
	bExt := ProcessZeroBytes(b, uint64(len(full)-j))

	leftFirst := Combine(Combine(aExt, bExt), d)
	rightFirst := Combine(aExt, Combine(bExt, d))

	require.True(t, leftFirst.Equal(rightFirst), "Combine grouping changed the result")
	require.Equal(t, c.Compute(DefaultAlgorithm, full), Finalize(leftFirst))
}

// CRC-10/ATM's width (10) is less than 64, and non-reflected: Equal must
// compare only the low Width bits of the register, ignoring whatever
// garbage could in principle occupy the rest of the word. The bytes
// 0x06 0x33 spell out the generator itself, so they leave the register
// where two zero bytes do.
func TestStateEqualIgnoresOutOfRangeBits(t *testing.T) {
	c := CRC10ATM
	a := Process(DefaultAlgorithm, c.NewState(), []byte{0x00, 0x00})
	b := Process(DefaultAlgorithm, c.NewState(), []byte{0x06, 0x33})
	b.reg |= ^uint64(0) << c.p.Width
	if !a.Equal(b) {
		t.Errorf("states differing only above Width bits compared unequal")
	}
}
