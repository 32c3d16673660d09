package bitarray

import (
	"encoding/binary"
	"fmt"

	"github.com/hupe1980/bitkit/internal/conv"
)

// MarshalBinary encodes the array as [length:u64][words:u64...], little-endian.
// Bits beyond Len are written as zero.
func (a *Array) MarshalBinary() ([]byte, error) {
	n := a.wordCount()
	out := make([]byte, 8+8*n)
	binary.LittleEndian.PutUint64(out, a.length)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint64(out[8+8*i:], a.word(i))
	}
	return out, nil
}

// UnmarshalBinary decodes data produced by MarshalBinary into an empty array.
// The decoded array is solely owned.
func (a *Array) UnmarshalBinary(data []byte) error {
	if a.length != 0 || a.words != nil {
		return ErrNotEmpty
	}
	if len(data) < 8 {
		return fmt.Errorf("bitarray: unmarshal: need 8 header bytes, got %d", len(data))
	}
	length := binary.LittleEndian.Uint64(data)
	wc, err := conv.WordCount(length)
	if err != nil {
		return fmt.Errorf("bitarray: unmarshal: %w", err)
	}
	if want := uint64(wc)*8 + 8; uint64(len(data)) != want {
		return fmt.Errorf("bitarray: unmarshal: %d bits need %d bytes, got %d", length, want, len(data))
	}
	words := make([]uint64, wc)
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(data[8+8*i:])
	}
	a.words = words
	a.length = length
	if wc > 0 {
		a.words[wc-1] &= a.tailMask()
	}
	return nil
}
