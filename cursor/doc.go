// Package cursor provides position-tracking bit readers over bit arrays and views.
//
// Every reader implements Reader and is one of three kinds:
//
//   - KindIndependent: a *Cursor with its own position. Clone, CloneRange and
//     SubDetached produce these; advancing one never affects another.
//   - KindTagAlong: a *Cursor created by Sub. Every position change of the child
//     is mirrored onto its parent (and transitively onto the parent's parent), so
//     several sub-decoders can consume one shared stream without re-seeking.
//   - KindDelegate: a *Delegate created by Bound. It forwards every read to its
//     base reader, whose position is the source of truth, and enforces a length
//     ceiling captured at construction.
//
// The set of kinds is closed: Reader has unexported methods and cannot be
// implemented outside this package.
//
// # Bounds
//
// Windows are strictly hierarchical. A reader derived from another reader is
// bounded by that reader's window, never by the extent of the underlying storage:
//
//	c := cursor.New(arr)          // arr has 100 bits
//	a, _ := c.CloneRange(0, 20)
//	_, err := a.CloneRange(0, 30) // ErrOutOfRange, although arr has 100 bits
//
// Range violations return a *bitarray.RangeError (errors.Is(err,
// bitarray.ErrOutOfRange)). Coupling violations, such as a tag-along child
// pushing its parent outside the parent's window or a delegate whose base was
// moved out of the delegate's window, return a *StateError
// (errors.Is(err, ErrInvalidState)). Nothing is truncated, clamped or wrapped.
//
// Readers share storage with their source and observe its mutations live.
// Cloning copies a position, never bits.
package cursor
