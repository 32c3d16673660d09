// Package bitkit provides packed bit arrays, bit cursors and variable-precision
// float decoding, plus snapshot and memory-mapped storage for bit arrays.
//
// The core lives in subpackages:
//
//   - bitarray: fixed-length packed bit storage (Array), read-only windows
//     (View) and explicitly shared buffers (Shared).
//   - cursor: sequential bit readers with independent, tag-along and bounded
//     delegate coupling.
//   - vpfloat: fixed-width float codecs (Standard, Interleaved) on top of cursors.
//   - persistence: the snapshot file format.
//
// This package ties storage to the file system.
//
// # Snapshots
//
//	ctx := context.Background()
//	arr := bitarray.New(1 << 20)
//	_ = arr.Set(42, true)
//
//	_ = bitkit.Save(ctx, "bits.bka", arr, bitkit.WithCompression(bitkit.CompressionZSTD))
//	loaded, _ := bitkit.Load(ctx, "bits.bka")
//	all, _ := bitkit.LoadAll(ctx, []string{"a.bka", "b.bka"}, bitkit.WithParallelism(4))
//
// WithResourceLimits caps the decoded bytes and the read rate of one Load or
// LoadAll call.
//
// # Memory-mapped arrays
//
// Map backs a shared Array with a file of raw little-endian words. Mutations
// through the array are stores into the mapping:
//
//	m, _ := bitkit.Map("bits.raw", 4096)
//	defer m.Close()
//	_ = m.Array().Set(7, true)
//	_ = m.Sync()
//
// # Errors
//
// Errors returned by this package match one of ErrInvalidArgument, ErrCorrupt,
// ErrIncompatibleFormat, ErrClosed or ErrResourceExhausted with errors.Is,
// while still wrapping the underlying cause.
package bitkit
