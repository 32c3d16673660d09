package bitarray

import (
	"math/bits"
	"strings"

	"github.com/hupe1980/bitkit/internal/conv"
	"github.com/hupe1980/bitkit/internal/hash"
)

const (
	wordBits  = 64
	wordShift = 6
	wordMask  = wordBits - 1
)

// Array is a fixed-length sequence of bits packed into 64-bit words.
//
// The length never changes after construction; only bit values do.
// An Array is not safe for concurrent mutation. Concurrent reads are fine.
type Array struct {
	words  []uint64
	length uint64
	shared *Shared // non-nil when words alias a caller-owned buffer
}

// New returns a zeroed array of n bits.
func New(n uint64) *Array {
	a := &Array{length: n}
	a.words = make([]uint64, a.wordCount())
	return a
}

// FromBools copies one bit per element, in order.
func FromBools(values []bool) *Array {
	a := &Array{
		words:  make([]uint64, (len(values)+wordMask)/wordBits),
		length: uint64(len(values)),
	}
	for i, v := range values {
		if v {
			a.words[i>>wordShift] |= 1 << (uint(i) & wordMask)
		}
	}
	return a
}

// FromWords copies the first ceil(n/64) words into a new, solely owned array.
// Bits of the final word beyond n are don't-care and are cleared in the copy.
func FromWords(words []uint64, n uint64) (*Array, error) {
	wc, err := conv.WordCount(n)
	if err != nil {
		return nil, err
	}
	if len(words) < wc {
		return nil, &RangeError{Op: "bitarray: from words", Value: n, Limit: uint64(len(words)) * wordBits}
	}
	a := &Array{words: make([]uint64, wc), length: n}
	copy(a.words, words)
	if wc > 0 {
		a.words[wc-1] &= a.tailMask()
	}
	return a, nil
}

// Len returns the number of bits.
func (a *Array) Len() uint64 {
	return a.length
}

// IsShared reports whether the array aliases a caller-owned buffer.
func (a *Array) IsShared() bool {
	return a.shared != nil
}

// tailMask masks the valid bits of the final word.
func (a *Array) tailMask() uint64 {
	if r := a.length & wordMask; r != 0 {
		return 1<<r - 1
	}
	return ^uint64(0)
}

// word returns word i with bits beyond Len cleared.
func (a *Array) word(i int) uint64 {
	if i == a.wordCount()-1 {
		return a.words[i] & a.tailMask()
	}
	return a.words[i]
}

func (a *Array) wordCount() int {
	return int(a.length>>wordShift) + int(min(a.length&wordMask, 1))
}

// Get returns bit i.
func (a *Array) Get(i uint64) (bool, error) {
	if i >= a.length {
		return false, &RangeError{Op: "bitarray: get", Value: i, Limit: a.length}
	}
	return a.words[i>>wordShift]&(1<<(i&wordMask)) != 0, nil
}

// Set writes bit i.
func (a *Array) Set(i uint64, v bool) error {
	if i >= a.length {
		return &RangeError{Op: "bitarray: set", Value: i, Limit: a.length}
	}
	m := uint64(1) << (i & wordMask)
	if v {
		a.words[i>>wordShift] |= m
	} else {
		a.words[i>>wordShift] &^= m
	}
	return nil
}

// Flip inverts bit i.
func (a *Array) Flip(i uint64) error {
	if i >= a.length {
		return &RangeError{Op: "bitarray: flip", Value: i, Limit: a.length}
	}
	a.words[i>>wordShift] ^= 1 << (i & wordMask)
	return nil
}

// Extract returns width bits (1..64) starting at offset as an unsigned integer.
// Bit offset lands in bit 0 of the result; all bits above width are zero.
func (a *Array) Extract(offset uint64, width uint) (uint64, error) {
	if err := CheckWidth("bitarray: extract", width); err != nil {
		return 0, err
	}
	if err := CheckWindow("bitarray: extract", offset, uint64(width), a.length); err != nil {
		return 0, err
	}
	return extract(a.words, offset, width), nil
}

// Deposit writes the low width bits (1..64) of value starting at offset.
func (a *Array) Deposit(offset uint64, width uint, value uint64) error {
	if err := CheckWidth("bitarray: deposit", width); err != nil {
		return err
	}
	if err := CheckWindow("bitarray: deposit", offset, uint64(width), a.length); err != nil {
		return err
	}
	deposit(a.words, offset, width, value)
	return nil
}

// Xor replaces a with a XOR other. Both arrays must have the same length.
func (a *Array) Xor(other *Array) error {
	if other.length != a.length {
		return lengthMismatch("bitarray: xor", a.length, other.length)
	}
	n := a.wordCount()
	for i := 0; i < n-1; i++ {
		a.words[i] ^= other.words[i]
	}
	if n > 0 {
		// Keep a's own tail bits untouched; they may belong to a shared buffer.
		a.words[n-1] ^= other.words[n-1] & a.tailMask()
	}
	return nil
}

// XorView replaces a with a XOR v. The view must have the same length as a.
func (a *Array) XorView(v View) error {
	if v.length != a.length {
		return lengthMismatch("bitarray: xor view", a.length, v.length)
	}
	n := a.wordCount()
	for i := 0; i < n; i++ {
		w := v.word(i)
		if i == n-1 {
			w &= a.tailMask()
		}
		a.words[i] ^= w
	}
	return nil
}

// CountOnes returns the number of set bits.
func (a *Array) CountOnes() uint64 {
	var c int
	n := a.wordCount()
	for i := 0; i < n; i++ {
		c += bits.OnesCount64(a.word(i))
	}
	return uint64(c)
}

// Slice returns a read-only view of bits [start, end). The view shares storage with a.
func (a *Array) Slice(start, end uint64) (View, error) {
	if start > end || end > a.length {
		return View{}, &RangeError{Op: "bitarray: slice", Value: end, Limit: a.length}
	}
	return View{arr: a, start: start, length: end - start}, nil
}

// View returns a view over the whole array.
func (a *Array) View() View {
	return View{arr: a, length: a.length}
}

// Equal reports whether a and other hold the same bits.
func (a *Array) Equal(other *Array) bool {
	if a == other {
		return true
	}
	if other == nil || a.length != other.length {
		return false
	}
	n := a.wordCount()
	for i := 0; i < n; i++ {
		if a.word(i) != other.word(i) {
			return false
		}
	}
	return true
}

// Hash returns a content hash. Equal arrays and views hash identically.
func (a *Array) Hash() uint64 {
	c := hash.NewContent(a.length)
	n := a.wordCount()
	for i := 0; i < n; i++ {
		c.WriteWord(a.word(i))
	}
	return c.Sum64()
}

// Clone returns a solely owned copy of a.
func (a *Array) Clone() *Array {
	return &Array{words: a.Words(), length: a.length}
}

// Words returns a copy of the backing words with bits beyond Len cleared.
func (a *Array) Words() []uint64 {
	n := a.wordCount()
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		out[i] = a.word(i)
	}
	return out
}

// String renders the bits in index order, e.g. "0110".
func (a *Array) String() string {
	var sb strings.Builder
	sb.Grow(int(min(a.length, 1<<20)))
	for i := uint64(0); i < a.length; i++ {
		if a.words[i>>wordShift]&(1<<(i&wordMask)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func mask(width uint) uint64 {
	if width >= wordBits {
		return ^uint64(0)
	}
	return 1<<width - 1
}

// extract reads width bits at offset; the field may straddle two words.
func extract(words []uint64, offset uint64, width uint) uint64 {
	idx := offset >> wordShift
	shift := uint(offset & wordMask)
	v := words[idx] >> shift
	if shift+width > wordBits {
		v |= words[idx+1] << (wordBits - shift)
	}
	return v & mask(width)
}

func deposit(words []uint64, offset uint64, width uint, value uint64) {
	m := mask(width)
	value &= m
	idx := offset >> wordShift
	shift := uint(offset & wordMask)
	words[idx] = words[idx]&^(m<<shift) | value<<shift
	if shift+width > wordBits {
		hi := wordBits - shift
		words[idx+1] = words[idx+1]&^(m>>hi) | value>>hi
	}
}
