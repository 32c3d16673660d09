package cursor

import (
	"github.com/hupe1980/bitkit/bitarray"
)

// NotFound is returned by IndexOf when the pattern does not occur.
const NotFound int64 = -1

// Source is a bit sequence readers can consume.
// *bitarray.Array and bitarray.View implement it.
type Source interface {
	Len() uint64
	Extract(offset uint64, width uint) (uint64, error)
}

var (
	_ Source = (*bitarray.Array)(nil)
	_ Source = bitarray.View{}

	_ Reader = (*Cursor)(nil)
	_ Reader = (*Delegate)(nil)
)

// Kind identifies how a reader is coupled to the reader it was derived from.
type Kind uint8

const (
	KindIndependent Kind = iota
	KindTagAlong
	KindDelegate
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindIndependent:
		return "Independent"
	case KindTagAlong:
		return "TagAlong"
	case KindDelegate:
		return "Delegate"
	default:
		return "Unknown"
	}
}

// Reader is the common interface of all cursor kinds.
//
// Positions are relative to the reader's own window: Position()+Remaining()
// always equals Length().
type Reader interface {
	Kind() Kind
	Length() uint64
	Position() uint64
	Remaining() uint64

	// ReadBits reads the next n (1..64) bits as an unsigned integer and advances by n.
	// The first bit read is bit 0 of the result.
	ReadBits(n uint) (uint64, error)
	ReadBit() (bool, error)
	ReadUint8() (uint8, error)
	ReadUint32() (uint32, error)
	ReadUint64() (uint64, error)

	// Seek moves to pos, which may equal Length().
	Seek(pos uint64) error
	Skip(n uint64) error

	// IndexOf returns the first position at or after Position() where the low
	// width bits of pattern occur, or NotFound. It does not move the reader.
	IndexOf(pattern uint64, width uint) (int64, error)

	// Clone returns an independent cursor with the same window and position.
	Clone() *Cursor
	// CloneRange returns an independent cursor over [start, end) of this window.
	CloneRange(start, end uint64) (*Cursor, error)
	// Sub returns a tag-along cursor over the next n bits.
	Sub(n uint64) (*Cursor, error)
	// SubDetached returns an independent cursor over the next n bits.
	SubDetached(n uint64) (*Cursor, error)
	// Bound returns a delegate limited to the next n bits of this reader.
	Bound(n uint64) (*Delegate, error)

	position() (uint64, error)
	locate() (Source, uint64, error)
	canShift(s shift) error
	doShift(s shift)
}

// shift is a position delta; back selects the direction.
type shift struct {
	n    uint64
	back bool
}

func delta(from, to uint64) shift {
	if to < from {
		return shift{n: from - to, back: true}
	}
	return shift{n: to - from}
}

func readBit(r Reader) (bool, error) {
	v, err := r.ReadBits(1)
	return v == 1, err
}

func readUint8(r Reader) (uint8, error) {
	v, err := r.ReadBits(8)
	return uint8(v), err
}

func readUint32(r Reader) (uint32, error) {
	v, err := r.ReadBits(32)
	return uint32(v), err
}

func readUint64(r Reader) (uint64, error) {
	return r.ReadBits(64)
}
