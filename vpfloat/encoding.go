package vpfloat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hupe1980/bitkit/cursor"
)

const (
	// MinBitCount is the narrowest supported value width.
	MinBitCount = 2
	// MaxBitCount is the widest supported value width.
	MaxBitCount = 64
)

var (
	// ErrInvalidBitCount is returned for widths outside [MinBitCount, MaxBitCount].
	ErrInvalidBitCount = errors.New("vpfloat: invalid bit count")
	// ErrUnknownEncoding is returned for an Encoding without a codec.
	ErrUnknownEncoding = errors.New("vpfloat: unknown encoding")
)

// Encoding identifies a float codec.
type Encoding uint8

const (
	// Standard is the default sign/exponent/mantissa encoding.
	Standard Encoding = iota
	// Interleaved is the extension-invariant interleaved-pair encoding.
	Interleaved
)

// String returns the string representation of the encoding.
func (e Encoding) String() string {
	switch e {
	case Standard:
		return "standard"
	case Interleaved:
		return "interleaved"
	default:
		return fmt.Sprintf("Encoding(%d)", uint8(e))
	}
}

// ParseEncoding parses a case-insensitive encoding name.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "default":
		return Standard, nil
	case "interleaved":
		return Interleaved, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEncoding, s)
	}
}

// Codec maps fixed-width bit patterns to float64 values.
type Codec interface {
	Encoding() Encoding
	// Decode reads bitCount bits from r and decodes them.
	Decode(r cursor.Reader, bitCount uint) (float64, error)
	// DecodeBits decodes the low bitCount bits of raw.
	DecodeBits(raw uint64, bitCount uint) (float64, error)
	// MinValue returns the smallest value representable in bitCount bits.
	MinValue(bitCount uint) (float64, error)
	// MaxValue returns the largest value representable in bitCount bits.
	MaxValue(bitCount uint) (float64, error)
}

var codecs = [...]Codec{
	Standard:    standardCodec{},
	Interleaved: interleavedCodec{},
}

// ByEncoding returns the codec for enc.
func ByEncoding(enc Encoding) (Codec, error) {
	if int(enc) >= len(codecs) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, enc)
	}
	return codecs[enc], nil
}

// DecodeBits decodes the low bitCount bits of raw with the codec for enc.
func DecodeBits(enc Encoding, raw uint64, bitCount uint) (float64, error) {
	c, err := ByEncoding(enc)
	if err != nil {
		return 0, err
	}
	return c.DecodeBits(raw, bitCount)
}

func checkBitCount(bitCount uint) error {
	if bitCount < MinBitCount || bitCount > MaxBitCount {
		return fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidBitCount, bitCount, MinBitCount, MaxBitCount)
	}
	return nil
}

func lowBits(raw uint64, bitCount uint) uint64 {
	if bitCount >= 64 {
		return raw
	}
	return raw & (1<<bitCount - 1)
}

// readRaw reads one pattern of bitCount bits.
func readRaw(r cursor.Reader, bitCount uint) (uint64, error) {
	if err := checkBitCount(bitCount); err != nil {
		return 0, err
	}
	return r.ReadBits(bitCount)
}
