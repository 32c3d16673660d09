package vpfloat

import (
	"github.com/hupe1980/bitkit/cursor"
)

// Reader is a cursor that can also read fixed-width float values.
// All cursor.Reader methods operate on the wrapped cursor.
type Reader struct {
	cursor.Reader
	codec    Codec
	bitCount uint
}

// NewReader upgrades r into a float reader decoding bitCount-bit values with enc.
func NewReader(r cursor.Reader, enc Encoding, bitCount uint) (*Reader, error) {
	c, err := ByEncoding(enc)
	if err != nil {
		return nil, err
	}
	if err := checkBitCount(bitCount); err != nil {
		return nil, err
	}
	return &Reader{Reader: r, codec: c, bitCount: bitCount}, nil
}

// Codec returns the codec used by ReadFloat.
func (r *Reader) Codec() Codec { return r.codec }

// BitCount returns the width of one value.
func (r *Reader) BitCount() uint { return r.bitCount }

// ReadFloat reads and decodes the next value.
func (r *Reader) ReadFloat() (float64, error) {
	return r.codec.Decode(r.Reader, r.bitCount)
}

// Min returns the smallest value ReadFloat can return.
func (r *Reader) Min() float64 {
	v, _ := r.codec.MinValue(r.bitCount)
	return v
}

// Max returns the largest value ReadFloat can return.
func (r *Reader) Max() float64 {
	v, _ := r.codec.MaxValue(r.bitCount)
	return v
}
