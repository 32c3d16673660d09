package bitarray

// Shared is an explicitly shared word buffer.
//
// Arrays built with NewShared alias the buffer instead of copying it: writes
// through the Array are visible to every other holder of the same words, and
// writes by other holders are visible through the Array. Sharing is always
// opt-in through this handle.
type Shared struct {
	words []uint64
}

// Share wraps words for by-reference construction. The caller keeps ownership of
// the slice and must not shrink it while arrays built on it are alive.
func Share(words []uint64) *Shared {
	return &Shared{words: words}
}

// Words returns the aliased slice.
func (s *Shared) Words() []uint64 {
	return s.words
}

// NewShared returns an n-bit array aliasing s. Bits of the final word beyond n
// are left untouched and never observed.
func NewShared(s *Shared, n uint64) (*Array, error) {
	a := &Array{length: n, shared: s}
	if wc := a.wordCount(); len(s.words) < wc {
		return nil, &RangeError{Op: "bitarray: new shared", Value: n, Limit: uint64(len(s.words)) * wordBits}
	}
	a.words = s.words
	return a, nil
}
