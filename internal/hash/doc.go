// Package hash provides the checksums and content hashes used by bitkit.
//
// # CRC32-Castagnoli (CRC32C)
//
// Snapshot payloads are protected by CRC32C, which is hardware accelerated on
// x86 (SSE4.2) and ARM (CRC extension):
//
//	checksum := hash.CRC32C(data)
//
// For streaming checksums:
//
//	h := hash.NewCRC32C()
//	h.Write(chunk1)
//	h.Write(chunk2)
//	checksum := h.Sum32()
//
// # Content hashing
//
// Bit arrays and views hash their logical content with xxhash64. The digest is
// seeded with the bit length and then fed one 64-bit word at a time, so a view
// and an array holding the same bits produce the same value:
//
//	c := hash.NewContent(length)
//	c.WriteWord(w0)
//	c.WriteWord(w1)
//	sum := c.Sum64()
//
// Content hashes are not cryptographic. Use them for deduplication and map keys,
// never for tamper detection.
package hash
