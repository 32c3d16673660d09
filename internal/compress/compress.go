// Package compress frames byte blocks with optional LZ4 or ZSTD compression.
package compress

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Type selects the block compression algorithm.
type Type uint8

const (
	// None stores the block as is.
	None Type = 0
	// LZ4 is fast block compression.
	LZ4 Type = 1
	// ZSTD trades speed for a better ratio.
	ZSTD Type = 2
)

// String returns the string representation of the compression type.
func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case ZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// Valid reports whether t is a known type.
func (t Type) Valid() bool {
	return t <= ZSTD
}

var (
	// ErrCorrupt is returned when a block cannot be decoded.
	ErrCorrupt = errors.New("compress: corrupt block")
	// ErrTooLarge is returned for blocks that do not fit the 32-bit header.
	ErrTooLarge = errors.New("compress: block too large")
)

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil)
}

// HeaderSize is the size of the block header:
// [uncompressedSize u32][compressedSize u32], compressedSize 0 meaning stored.
const HeaderSize = 8

// Compress frames data as a single block. If compression does not save at
// least 10% the block is stored uncompressed.
func Compress(data []byte, t Type) ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("compress: unknown type %s", t)
	}
	if len(data) > math.MaxUint32-HeaderSize {
		return nil, ErrTooLarge
	}

	var packed []byte
	var err error

	switch t {
	case LZ4:
		packed, err = compressLZ4(data)
	case ZSTD:
		packed, err = compressZSTD(data)
	}
	if err != nil {
		return nil, err
	}

	if len(packed) == 0 || float64(len(packed)) > float64(len(data))*0.9 {
		out := make([]byte, HeaderSize+len(data))
		binary.LittleEndian.PutUint32(out[0:], uint32(len(data)))
		copy(out[HeaderSize:], data)
		return out, nil
	}

	out := make([]byte, HeaderSize+len(packed))
	binary.LittleEndian.PutUint32(out[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(out[4:], uint32(len(packed)))
	copy(out[HeaderSize:], packed)
	return out, nil
}

func compressLZ4(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, dst, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // incompressible
	}
	return dst[:n], nil
}

func compressZSTD(data []byte) ([]byte, error) {
	enc, err := getZstdEncoder()
	if err != nil {
		return nil, err
	}
	defer zstdEncoderPool.Put(enc)

	return enc.EncodeAll(data, nil), nil
}

// Decompress decodes a block produced by Compress with the same type.
func Decompress(block []byte, t Type) ([]byte, error) {
	if len(block) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrCorrupt, len(block))
	}

	size := uint64(binary.LittleEndian.Uint32(block[0:]))
	packedSize := uint64(binary.LittleEndian.Uint32(block[4:]))
	body := block[HeaderSize:]

	if packedSize == 0 {
		if uint64(len(body)) != size {
			return nil, fmt.Errorf("%w: stored block has %d bytes, header says %d", ErrCorrupt, len(body), size)
		}
		out := make([]byte, size)
		copy(out, body)
		return out, nil
	}

	if uint64(len(body)) != packedSize {
		return nil, fmt.Errorf("%w: block has %d bytes, header says %d", ErrCorrupt, len(body), packedSize)
	}

	out := make([]byte, size)

	switch t {
	case LZ4:
		n, err := lz4.UncompressBlock(body, out)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		if uint64(n) != size {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		return out, nil

	case ZSTD:
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer zstdDecoderPool.Put(dec)

		decoded, err := dec.DecodeAll(body, out[:0])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		if uint64(len(decoded)) != size {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		return decoded, nil

	default:
		return nil, fmt.Errorf("%w: compressed block with type %s", ErrCorrupt, t)
	}
}
