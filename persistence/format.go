package persistence

import (
	"errors"

	"github.com/hupe1980/bitkit/internal/compress"
)

const (
	// MagicNumber identifies bitkit snapshot files (bytes "BKA1" on disk).
	MagicNumber = 0x31414B42
	// Version is the current file format version.
	Version = 1
	// HeaderSize is the encoded size of FileHeader.
	HeaderSize = 32
)

var (
	ErrInvalidMagic       = errors.New("persistence: invalid magic number")
	ErrInvalidVersion     = errors.New("persistence: unsupported version")
	ErrInvalidCompression = errors.New("persistence: unknown compression")
	ErrInvalidPayload     = errors.New("persistence: invalid payload")
)

// Compression selects how snapshot payloads are compressed.
type Compression = compress.Type

const (
	CompressionNone = compress.None
	CompressionLZ4  = compress.LZ4
	CompressionZSTD = compress.ZSTD
)

// FileHeader is the 32-byte header at the start of every snapshot.
type FileHeader struct {
	Magic       uint32
	Version     uint32
	Compression uint8
	Padding     [3]byte
	Length      uint64 // bits
	PayloadSize uint32 // stored bytes following the header
	Checksum    uint32 // CRC32C of the stored payload
	Reserved    uint32
}
