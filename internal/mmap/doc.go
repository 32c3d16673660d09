// Package mmap maps files of little-endian 64-bit words into memory.
//
// # Usage
//
//	m, err := mmap.OpenWords("bits.raw", 1024)
//	if err != nil { ... }
//	defer m.Close()
//
//	words := m.Words() // aliases the file; writes are shared with it
//	words[0] |= 1
//	_ = m.Sync()
//
// The file is created if missing and resized to exactly ceil(n/64)*8 bytes.
// Mappings are read-write and shared, so stores through Words reach the file
// without an explicit write call. Sync flushes them to stable storage.
//
// # Platform Support
//
// Unix only (mmap(2), msync(2), madvise(2)). On other platforms OpenWords
// returns ErrUnsupported. The word view reinterprets file bytes in host order,
// so big-endian hosts are rejected with ErrBigEndian.
//
// # Thread Safety
//
// Close is idempotent and safe to call concurrently. Callers must not touch
// Words after Close returns.
package mmap
