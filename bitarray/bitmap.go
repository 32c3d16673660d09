package bitarray

import (
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Bitmap returns the indices of all set bits as a roaring bitmap.
func (a *Array) Bitmap() *roaring64.Bitmap {
	bm := roaring64.New()
	n := a.wordCount()
	for i := 0; i < n; i++ {
		w := a.word(i)
		base := uint64(i) << wordShift
		for w != 0 {
			bm.Add(base + uint64(bits.TrailingZeros64(w)))
			w &= w - 1
		}
	}
	return bm
}

// FromBitmap returns an n-bit array with the bits listed in bm set.
// Every index in bm must be below n.
func FromBitmap(bm *roaring64.Bitmap, n uint64) (*Array, error) {
	a := New(n)
	if bm.IsEmpty() {
		return a, nil
	}
	if hi := bm.Maximum(); hi >= n {
		return nil, &RangeError{Op: "bitarray: from bitmap", Value: hi, Limit: n}
	}
	it := bm.Iterator()
	for it.HasNext() {
		i := it.Next()
		a.words[i>>wordShift] |= 1 << (i & wordMask)
	}
	return a, nil
}
