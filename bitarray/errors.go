package bitarray

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by every *RangeError.
	ErrOutOfRange = errors.New("bitarray: out of range")

	// ErrLengthMismatch is returned when a bulk operation is applied to operands of different lengths.
	ErrLengthMismatch = errors.New("bitarray: length mismatch")

	// ErrNotEmpty is returned by UnmarshalBinary when the receiver already holds bits.
	ErrNotEmpty = errors.New("bitarray: unmarshal into non-empty array")
)

// RangeError reports an index, width or window that violates a bound.
//
// errors.Is(err, ErrOutOfRange) reports true for every RangeError.
type RangeError struct {
	Op    string // operation that failed, e.g. "get" or "read"
	Value uint64 // offending index, width or window end
	Limit uint64 // bound that was violated
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %d out of range (limit %d)", e.Op, e.Value, e.Limit)
}

// Unwrap returns ErrOutOfRange.
func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// CheckWidth validates a fixed-width field size (1..64 bits).
func CheckWidth(op string, width uint) error {
	if width == 0 || width > 64 {
		return &RangeError{Op: op + " width", Value: uint64(width), Limit: 64}
	}
	return nil
}

// CheckWindow validates that [offset, offset+width) lies within [0, length).
func CheckWindow(op string, offset, width, length uint64) error {
	if width > length || offset > length-width {
		return &RangeError{Op: op, Value: offset + width, Limit: length}
	}
	return nil
}

func lengthMismatch(op string, want, got uint64) error {
	return fmt.Errorf("%w: %s expects %d bits, got %d", ErrLengthMismatch, op, want, got)
}
