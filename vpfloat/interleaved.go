package vpfloat

import (
	"math"

	"github.com/hupe1980/bitkit/cursor"
)

type interleavedCodec struct{}

func (interleavedCodec) Encoding() Encoding { return Interleaved }

func (c interleavedCodec) Decode(r cursor.Reader, bitCount uint) (float64, error) {
	raw, err := readRaw(r, bitCount)
	if err != nil {
		return 0, err
	}
	return decodeInterleaved(raw), nil
}

func (interleavedCodec) DecodeBits(raw uint64, bitCount uint) (float64, error) {
	if err := checkBitCount(bitCount); err != nil {
		return 0, err
	}
	return decodeInterleaved(lowBits(raw, bitCount)), nil
}

// MinValue is the all-ones pattern: negative with every pair bit set.
func (interleavedCodec) MinValue(bitCount uint) (float64, error) {
	if err := checkBitCount(bitCount); err != nil {
		return 0, err
	}
	return decodeInterleaved(lowBits(math.MaxUint64, bitCount)), nil
}

// MaxValue is positive with every pair bit set except the smallest fraction
// bit. Without fraction bits (width 2) it is the reserved 1.
func (interleavedCodec) MaxValue(bitCount uint) (float64, error) {
	if err := checkBitCount(bitCount); err != nil {
		return 0, err
	}
	n := bitCount - 1
	d := n / 2
	if d == 0 {
		return 1, nil
	}
	m := lowBits(math.MaxUint64, n) &^ (1 << (2*d - 1))
	return decodeInterleaved((m<<1 | 1) + 1), nil
}

func decodeInterleaved(v uint64) float64 {
	switch v {
	case 0:
		return 0
	case 1:
		return -1
	case 2:
		return 1
	}
	u := v - 1
	negative := u&1 == 0
	m := u >> 1

	// Integer and fraction parts are accumulated exactly and rounded once.
	var whole uint64
	var frac uint32
	for i := uint(0); m != 0; i++ {
		if m&1 != 0 {
			whole += 1 << (i + 1)
		}
		if m&2 != 0 {
			frac |= 1 << (31 - i)
		}
		m >>= 2
	}
	f := float64(whole) + math.Ldexp(float64(frac), -32)
	if negative {
		return -f
	}
	return f
}
