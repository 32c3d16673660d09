package cursor

import (
	"fmt"

	"github.com/hupe1980/bitkit/bitarray"
)

// Cursor reads a window [start, start+length) of a Source.
//
// A cursor with a parent is a tag-along cursor: every position change is
// validated against and then applied to the whole parent chain.
type Cursor struct {
	src    Source
	start  uint64
	length uint64
	pos    uint64
	parent Reader
}

// New returns an independent cursor over all of src, positioned at 0.
func New(src Source) *Cursor {
	return &Cursor{src: src, length: src.Len()}
}

// NewRange returns an independent cursor over [start, end) of src.
func NewRange(src Source, start, end uint64) (*Cursor, error) {
	if start > end || end > src.Len() {
		return nil, &bitarray.RangeError{Op: "cursor: new range", Value: end, Limit: src.Len()}
	}
	return &Cursor{src: src, start: start, length: end - start}, nil
}

// Kind returns KindTagAlong for cursors created by Sub and KindIndependent otherwise.
func (c *Cursor) Kind() Kind {
	if c.parent != nil {
		return KindTagAlong
	}
	return KindIndependent
}

// Length returns the window size.
func (c *Cursor) Length() uint64 { return c.length }

// Position returns the offset of the next bit to read, relative to the window.
func (c *Cursor) Position() uint64 { return c.pos }

// Remaining returns Length() - Position().
func (c *Cursor) Remaining() uint64 { return c.length - c.pos }

// ReadBits reads the next n bits (1..64).
func (c *Cursor) ReadBits(n uint) (uint64, error) {
	if err := bitarray.CheckWidth("cursor: read", n); err != nil {
		return 0, err
	}
	if uint64(n) > c.Remaining() {
		return 0, &bitarray.RangeError{Op: "cursor: read", Value: uint64(n), Limit: c.Remaining()}
	}
	s := shift{n: uint64(n)}
	if c.parent != nil {
		if err := c.parent.canShift(s); err != nil {
			return 0, err
		}
	}
	v, err := c.src.Extract(c.start+c.pos, n)
	if err != nil {
		return 0, err
	}
	c.doShift(s)
	return v, nil
}

// ReadBit reads a single bit.
func (c *Cursor) ReadBit() (bool, error) { return readBit(c) }

// ReadUint8 reads the next 8 bits.
func (c *Cursor) ReadUint8() (uint8, error) { return readUint8(c) }

// ReadUint32 reads the next 32 bits.
func (c *Cursor) ReadUint32() (uint32, error) { return readUint32(c) }

// ReadUint64 reads the next 64 bits.
func (c *Cursor) ReadUint64() (uint64, error) { return readUint64(c) }

// Seek moves the cursor to pos (0 <= pos <= Length()).
func (c *Cursor) Seek(pos uint64) error {
	if pos > c.length {
		return &bitarray.RangeError{Op: "cursor: seek", Value: pos, Limit: c.length}
	}
	s := delta(c.pos, pos)
	if c.parent != nil {
		if err := c.parent.canShift(s); err != nil {
			return err
		}
	}
	c.doShift(s)
	return nil
}

// Skip advances the cursor by n bits.
func (c *Cursor) Skip(n uint64) error {
	if n > c.Remaining() {
		return &bitarray.RangeError{Op: "cursor: skip", Value: n, Limit: c.Remaining()}
	}
	return c.Seek(c.pos + n)
}

// IndexOf returns the first position >= Position() at which the low width
// bits of pattern occur, or NotFound.
func (c *Cursor) IndexOf(pattern uint64, width uint) (int64, error) {
	return indexOf(c.src, c.start, c.pos, c.length, pattern, width)
}

// Clone returns an independent copy of c.
func (c *Cursor) Clone() *Cursor {
	return &Cursor{src: c.src, start: c.start, length: c.length, pos: c.pos}
}

// CloneRange returns an independent cursor over [start, end) of c's window.
func (c *Cursor) CloneRange(start, end uint64) (*Cursor, error) {
	if start > end || end > c.length {
		return nil, &bitarray.RangeError{Op: "cursor: clone range", Value: end, Limit: c.length}
	}
	return &Cursor{src: c.src, start: c.start + start, length: end - start}, nil
}

// Sub returns a tag-along cursor over the next n bits. Reading from the child
// advances c by the same amount.
func (c *Cursor) Sub(n uint64) (*Cursor, error) {
	if n > c.Remaining() {
		return nil, &bitarray.RangeError{Op: "cursor: sub", Value: n, Limit: c.Remaining()}
	}
	return &Cursor{src: c.src, start: c.start + c.pos, length: n, parent: c}, nil
}

// SubDetached returns an independent cursor over the next n bits.
func (c *Cursor) SubDetached(n uint64) (*Cursor, error) {
	if n > c.Remaining() {
		return nil, &bitarray.RangeError{Op: "cursor: sub", Value: n, Limit: c.Remaining()}
	}
	return &Cursor{src: c.src, start: c.start + c.pos, length: n}, nil
}

// Bound returns a delegate that reads through c and refuses to go past the
// next n bits.
func (c *Cursor) Bound(n uint64) (*Delegate, error) {
	if n > c.Remaining() {
		return nil, &bitarray.RangeError{Op: "cursor: bound", Value: n, Limit: c.Remaining()}
	}
	return &Delegate{base: c, start: c.pos, end: c.pos + n}, nil
}

// String implements fmt.Stringer.
func (c *Cursor) String() string {
	return fmt.Sprintf("Cursor{kind=%s pos=%d len=%d}", c.Kind(), c.pos, c.length)
}

func (c *Cursor) position() (uint64, error) { return c.pos, nil }

func (c *Cursor) locate() (Source, uint64, error) { return c.src, c.start + c.pos, nil }

func (c *Cursor) canShift(s shift) error {
	if (s.back && s.n > c.pos) || (!s.back && s.n > c.Remaining()) {
		return &StateError{
			Op:  "cursor: tag-along",
			Msg: fmt.Sprintf("moving by %s from position %d leaves window of length %d", s, c.pos, c.length),
		}
	}
	if c.parent != nil {
		return c.parent.canShift(s)
	}
	return nil
}

// doShift applies a shift already accepted by canShift.
func (c *Cursor) doShift(s shift) {
	if s.back {
		c.pos -= s.n
	} else {
		c.pos += s.n
	}
	if c.parent != nil {
		c.parent.doShift(s)
	}
}

func (s shift) String() string {
	if s.back {
		return fmt.Sprintf("-%d", s.n)
	}
	return fmt.Sprintf("+%d", s.n)
}

func indexOf(src Source, base, pos, length, pattern uint64, width uint) (int64, error) {
	if err := bitarray.CheckWidth("cursor: index of", width); err != nil {
		return NotFound, err
	}
	if width < 64 {
		pattern &= 1<<width - 1
	}
	if length-pos < uint64(width) {
		return NotFound, nil
	}
	for i := pos; i <= length-uint64(width); i++ {
		v, err := src.Extract(base+i, width)
		if err != nil {
			return NotFound, err
		}
		if v == pattern {
			return int64(i), nil
		}
	}
	return NotFound, nil
}
