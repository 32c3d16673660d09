// Package conv provides checked integer conversions.
//
// Bit counts are uint64 throughout bitkit while Go slices are indexed by int.
// These helpers convert between the two and fail instead of truncating, which
// matters when lengths come from untrusted file headers.
//
// For conversions that are provably safe by construction (loop indices bounded
// by a slice length), use direct casts instead.
package conv
