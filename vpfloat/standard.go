package vpfloat

import (
	"math"
	"math/bits"

	"github.com/hupe1980/bitkit/cursor"
)

type standardCodec struct{}

// layout describes how a width splits into exponent and mantissa fields.
type layout struct {
	expBits  uint
	mantBits uint
	bias     int
}

func standardLayout(bitCount uint) layout {
	n := bitCount - 1
	e := uint(bits.Len(n))
	l := layout{expBits: e, mantBits: n - e}
	if e >= 2 {
		l.bias = 1<<(e-2) - 1
	}
	return l
}

func (standardCodec) Encoding() Encoding { return Standard }

func (c standardCodec) Decode(r cursor.Reader, bitCount uint) (float64, error) {
	raw, err := readRaw(r, bitCount)
	if err != nil {
		return 0, err
	}
	return decodeStandard(raw, bitCount), nil
}

func (standardCodec) DecodeBits(raw uint64, bitCount uint) (float64, error) {
	if err := checkBitCount(bitCount); err != nil {
		return 0, err
	}
	return decodeStandard(lowBits(raw, bitCount), bitCount), nil
}

func (standardCodec) MinValue(bitCount uint) (float64, error) {
	if err := checkBitCount(bitCount); err != nil {
		return 0, err
	}
	return -standardMax(bitCount), nil
}

func (standardCodec) MaxValue(bitCount uint) (float64, error) {
	if err := checkBitCount(bitCount); err != nil {
		return 0, err
	}
	return standardMax(bitCount), nil
}

// standardMax is the largest exponent with a full mantissa.
func standardMax(bitCount uint) float64 {
	l := standardLayout(bitCount)
	mant := lowBits(math.MaxUint64, l.mantBits+1)
	exp := 1<<l.expBits - 1 - l.bias - int(l.mantBits)
	return math.Ldexp(float64(mant), exp)
}

func decodeStandard(v uint64, bitCount uint) float64 {
	if v == 0 {
		return 0
	}
	l := standardLayout(bitCount)
	n := bitCount - 1
	negative := v>>n&1 == 1
	e := int(lowBits(v, n) >> l.mantBits)
	m := lowBits(v, l.mantBits)
	f := math.Ldexp(float64(1<<l.mantBits|m), e-l.bias-int(l.mantBits))
	if negative {
		return -f
	}
	return f
}
