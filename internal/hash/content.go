package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Content is a streaming xxhash64 digest over 64-bit words.
type Content struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewContent returns a digest seeded with the logical bit length.
func NewContent(length uint64) *Content {
	c := &Content{d: xxhash.New()}
	c.WriteWord(length)
	return c
}

// WriteWord appends a word in little-endian byte order.
func (c *Content) WriteWord(w uint64) {
	binary.LittleEndian.PutUint64(c.buf[:], w)
	_, _ = c.d.Write(c.buf[:])
}

// Sum64 returns the current digest.
func (c *Content) Sum64() uint64 {
	return c.d.Sum64()
}
