// Package bitarray provides a fixed-length packed bit array and read-only views onto it.
//
// # Layout
//
// Bits are packed least-significant-bit first into 64-bit words: bit i of the
// logical sequence lives in words[i/64] at bit position i%64. Bits of the final
// word beyond Len() are never observed through the API. They are masked on every
// read, comparison, hash and population count.
//
// # Ownership
//
// An Array is either solely owned (New, FromBools, FromWords, FromBitmap copy their
// input) or explicitly shared through a *Shared handle:
//
//	s := bitarray.Share(words)
//	a, _ := bitarray.NewShared(s, 100) // a aliases words; a.IsShared() == true
//
// Mutations through an Array are visible to every View and cursor built on it.
// Views read live; there is no snapshot isolation.
//
// # Equality
//
// Equal and Hash are defined by content: two arrays (or views) with the same length
// and the same bit values are equal and hash identically, regardless of backing
// storage or view offset.
package bitarray
