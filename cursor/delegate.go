package cursor

import (
	"fmt"

	"github.com/hupe1980/bitkit/bitarray"
)

// Delegate reads through a base reader and limits it to a window captured at
// construction: [start, end) in the base's coordinates.
//
// The base's position is the source of truth. If the base is moved outside the
// window by other means, reads return a *StateError and Position panics; use Err
// to check without panicking.
type Delegate struct {
	base  Reader
	start uint64
	end   uint64
}

// Kind returns KindDelegate.
func (d *Delegate) Kind() Kind { return KindDelegate }

// Length returns the window size captured at construction.
func (d *Delegate) Length() uint64 { return d.end - d.start }

// Err reports whether the base reader is outside the delegate's window.
func (d *Delegate) Err() error {
	_, err := d.position()
	return err
}

// Position returns the base position relative to the window start.
// It panics if the base has left the window.
func (d *Delegate) Position() uint64 {
	p, err := d.position()
	if err != nil {
		panic(err)
	}
	return p
}

// Remaining returns the number of bits left in the window.
// It panics if the base has left the window.
func (d *Delegate) Remaining() uint64 {
	return d.Length() - d.Position()
}

// ReadBits reads the next n bits (1..64) from the base.
func (d *Delegate) ReadBits(n uint) (uint64, error) {
	p, err := d.position()
	if err != nil {
		return 0, err
	}
	if err := bitarray.CheckWidth("cursor: read", n); err != nil {
		return 0, err
	}
	if rem := d.Length() - p; uint64(n) > rem {
		return 0, &bitarray.RangeError{Op: "cursor: read", Value: uint64(n), Limit: rem}
	}
	return d.base.ReadBits(n)
}

// ReadBit reads a single bit.
func (d *Delegate) ReadBit() (bool, error) { return readBit(d) }

// ReadUint8 reads the next 8 bits.
func (d *Delegate) ReadUint8() (uint8, error) { return readUint8(d) }

// ReadUint32 reads the next 32 bits.
func (d *Delegate) ReadUint32() (uint32, error) { return readUint32(d) }

// ReadUint64 reads the next 64 bits.
func (d *Delegate) ReadUint64() (uint64, error) { return readUint64(d) }

// Seek moves the base to the given position relative to the window.
func (d *Delegate) Seek(pos uint64) error {
	if err := d.Err(); err != nil {
		return err
	}
	if pos > d.Length() {
		return &bitarray.RangeError{Op: "cursor: seek", Value: pos, Limit: d.Length()}
	}
	return d.base.Seek(d.start + pos)
}

// Skip advances the base by n bits.
func (d *Delegate) Skip(n uint64) error {
	p, err := d.position()
	if err != nil {
		return err
	}
	if rem := d.Length() - p; n > rem {
		return &bitarray.RangeError{Op: "cursor: skip", Value: n, Limit: rem}
	}
	return d.base.Skip(n)
}

// IndexOf searches the rest of the window for pattern.
func (d *Delegate) IndexOf(pattern uint64, width uint) (int64, error) {
	src, abs, p, err := d.window()
	if err != nil {
		return NotFound, err
	}
	return indexOf(src, abs-p, p, d.Length(), pattern, width)
}

// Clone returns an independent cursor over the delegate's window at the
// current position. It panics if the base has left the window.
func (d *Delegate) Clone() *Cursor {
	src, abs, p, err := d.window()
	if err != nil {
		panic(err)
	}
	return &Cursor{src: src, start: abs - p, length: d.Length(), pos: p}
}

// CloneRange returns an independent cursor over [start, end) of the window.
func (d *Delegate) CloneRange(start, end uint64) (*Cursor, error) {
	src, abs, p, err := d.window()
	if err != nil {
		return nil, err
	}
	if start > end || end > d.Length() {
		return nil, &bitarray.RangeError{Op: "cursor: clone range", Value: end, Limit: d.Length()}
	}
	return &Cursor{src: src, start: abs - p + start, length: end - start}, nil
}

// Sub returns a tag-along cursor over the next n bits. Reads from the child
// advance the base through the delegate, so the window is enforced.
func (d *Delegate) Sub(n uint64) (*Cursor, error) {
	src, abs, p, err := d.window()
	if err != nil {
		return nil, err
	}
	if rem := d.Length() - p; n > rem {
		return nil, &bitarray.RangeError{Op: "cursor: sub", Value: n, Limit: rem}
	}
	return &Cursor{src: src, start: abs, length: n, parent: d}, nil
}

// SubDetached returns an independent cursor over the next n bits.
func (d *Delegate) SubDetached(n uint64) (*Cursor, error) {
	src, abs, p, err := d.window()
	if err != nil {
		return nil, err
	}
	if rem := d.Length() - p; n > rem {
		return nil, &bitarray.RangeError{Op: "cursor: sub", Value: n, Limit: rem}
	}
	return &Cursor{src: src, start: abs, length: n}, nil
}

// Bound returns a delegate over the next n bits of this delegate.
func (d *Delegate) Bound(n uint64) (*Delegate, error) {
	p, err := d.position()
	if err != nil {
		return nil, err
	}
	if rem := d.Length() - p; n > rem {
		return nil, &bitarray.RangeError{Op: "cursor: bound", Value: n, Limit: rem}
	}
	return &Delegate{base: d, start: p, end: p + n}, nil
}

// String implements fmt.Stringer.
func (d *Delegate) String() string {
	if p, err := d.position(); err == nil {
		return fmt.Sprintf("Delegate{pos=%d len=%d}", p, d.Length())
	}
	return fmt.Sprintf("Delegate{invalid len=%d}", d.Length())
}

func (d *Delegate) position() (uint64, error) {
	bp, err := d.base.position()
	if err != nil {
		return 0, err
	}
	if bp < d.start || bp > d.end {
		return 0, &StateError{
			Op:  "cursor: delegate",
			Msg: fmt.Sprintf("base position %d outside window [%d, %d]", bp, d.start, d.end),
		}
	}
	return bp - d.start, nil
}

func (d *Delegate) locate() (Source, uint64, error) {
	if _, err := d.position(); err != nil {
		return nil, 0, err
	}
	return d.base.locate()
}

// window returns the source, the absolute offset of the current position and
// the position relative to the window.
func (d *Delegate) window() (Source, uint64, uint64, error) {
	p, err := d.position()
	if err != nil {
		return nil, 0, 0, err
	}
	src, abs, err := d.base.locate()
	if err != nil {
		return nil, 0, 0, err
	}
	return src, abs, p, nil
}

func (d *Delegate) canShift(s shift) error {
	p, err := d.position()
	if err != nil {
		return err
	}
	if (s.back && s.n > p) || (!s.back && s.n > d.Length()-p) {
		return &StateError{
			Op:  "cursor: delegate",
			Msg: fmt.Sprintf("moving by %s from position %d leaves window of length %d", s, p, d.Length()),
		}
	}
	return d.base.canShift(s)
}

func (d *Delegate) doShift(s shift) { d.base.doShift(s) }
