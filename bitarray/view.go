package bitarray

import (
	"math/bits"
	"strings"

	"github.com/hupe1980/bitkit/internal/hash"
)

// View is a read-only window [start, start+length) onto an Array.
//
// A View shares the array's words and reads them live. Equality and hashing are
// by content and do not depend on start.
type View struct {
	arr    *Array
	start  uint64
	length uint64
}

// Len returns the number of bits in the view.
func (v View) Len() uint64 {
	return v.length
}

func (v View) wordCount() int {
	return int(v.length>>wordShift) + int(min(v.length&wordMask, 1))
}

// word returns the i-th 64-bit chunk of the view, realigned to bit 0.
func (v View) word(i int) uint64 {
	off := uint64(i) << wordShift
	return extract(v.arr.words, v.start+off, uint(min(v.length-off, wordBits)))
}

// Get returns bit i of the view.
func (v View) Get(i uint64) (bool, error) {
	if i >= v.length {
		return false, &RangeError{Op: "bitarray: view get", Value: i, Limit: v.length}
	}
	return v.arr.Get(v.start + i)
}

// Extract returns width bits (1..64) starting at offset within the view.
func (v View) Extract(offset uint64, width uint) (uint64, error) {
	if err := CheckWidth("bitarray: view extract", width); err != nil {
		return 0, err
	}
	if err := CheckWindow("bitarray: view extract", offset, uint64(width), v.length); err != nil {
		return 0, err
	}
	return extract(v.arr.words, v.start+offset, width), nil
}

// CountOnes returns the number of set bits in the view.
func (v View) CountOnes() uint64 {
	var c int
	n := v.wordCount()
	for i := 0; i < n; i++ {
		c += bits.OnesCount64(v.word(i))
	}
	return uint64(c)
}

// Slice returns the sub-view [start, end) relative to v.
func (v View) Slice(start, end uint64) (View, error) {
	if start > end || end > v.length {
		return View{}, &RangeError{Op: "bitarray: view slice", Value: end, Limit: v.length}
	}
	return View{arr: v.arr, start: v.start + start, length: end - start}, nil
}

// Equal reports whether v and other hold the same bits.
func (v View) Equal(other View) bool {
	if v.length != other.length {
		return false
	}
	n := v.wordCount()
	for i := 0; i < n; i++ {
		if v.word(i) != other.word(i) {
			return false
		}
	}
	return true
}

// Hash returns a content hash equal to that of an Array with the same bits.
func (v View) Hash() uint64 {
	c := hash.NewContent(v.length)
	n := v.wordCount()
	for i := 0; i < n; i++ {
		c.WriteWord(v.word(i))
	}
	return c.Sum64()
}

// Xor returns a new, solely owned array holding v XOR other.
func (v View) Xor(other View) (*Array, error) {
	if v.length != other.length {
		return nil, lengthMismatch("bitarray: view xor", v.length, other.length)
	}
	out := New(v.length)
	for i := range out.words {
		out.words[i] = v.word(i) ^ other.word(i)
	}
	return out, nil
}

// ToArray copies the view into a new, solely owned array.
func (v View) ToArray() *Array {
	out := New(v.length)
	for i := range out.words {
		out.words[i] = v.word(i)
	}
	return out
}

// String renders the bits in index order.
func (v View) String() string {
	var sb strings.Builder
	for i := uint64(0); i < v.length; i++ {
		if extract(v.arr.words, v.start+i, 1) == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
