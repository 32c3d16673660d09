package persistence

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hupe1980/bitkit/bitarray"
	"github.com/hupe1980/bitkit/internal/compress"
	"github.com/hupe1980/bitkit/internal/conv"
	bkhash "github.com/hupe1980/bitkit/internal/hash"
)

// Encode writes a snapshot of arr to w.
func Encode(w io.Writer, arr *bitarray.Array, c Compression) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidCompression, c)
	}
	raw, err := arr.MarshalBinary()
	if err != nil {
		return err
	}
	payload, err := compress.Compress(raw, c)
	if err != nil {
		return err
	}
	size, err := conv.Uint32(uint64(len(payload)))
	if err != nil {
		return fmt.Errorf("%w: payload too large: %v", ErrInvalidPayload, err)
	}

	header := FileHeader{
		Magic:       MagicNumber,
		Version:     Version,
		Compression: uint8(c),
		Length:      arr.Len(),
		PayloadSize: size,
		Checksum:    bkhash.CRC32C(payload),
	}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// ReadHeader reads and validates a snapshot header.
func ReadHeader(r io.Reader) (*FileHeader, error) {
	var header FileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	if header.Magic != MagicNumber {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, header.Magic)
	}
	if header.Version != Version {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidVersion, header.Version)
	}
	if !Compression(header.Compression).Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCompression, header.Compression)
	}
	return &header, nil
}

// Decode reads a snapshot from r. The returned array is solely owned.
func Decode(r io.Reader) (*bitarray.Array, error) {
	header, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	cr := NewChecksumReader(io.LimitReader(r, int64(header.PayloadSize)))
	payload, err := io.ReadAll(cr)
	if err != nil {
		return nil, err
	}
	if len(payload) != int(header.PayloadSize) {
		return nil, fmt.Errorf("%w: got %d of %d payload bytes", io.ErrUnexpectedEOF, len(payload), header.PayloadSize)
	}
	if err := cr.Verify(header.Checksum); err != nil {
		return nil, err
	}

	raw, err := compress.Decompress(payload, Compression(header.Compression))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	arr := new(bitarray.Array)
	if err := arr.UnmarshalBinary(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if arr.Len() != header.Length {
		return nil, fmt.Errorf("%w: header says %d bits, payload has %d", ErrInvalidPayload, header.Length, arr.Len())
	}
	return arr, nil
}

// SaveToFile atomically replaces filename with a snapshot of arr.
func SaveToFile(filename string, arr *bitarray.Array, c Compression) error {
	return writeFileAtomic(filename, func(w io.Writer) error {
		return Encode(w, arr, c)
	})
}

// LoadFromFile reads the snapshot stored in filename.
func LoadFromFile(filename string) (*bitarray.Array, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(bufio.NewReaderSize(f, 256*1024))
}

// ReadFileHeader reads and validates only the header of filename.
func ReadFileHeader(filename string) (*FileHeader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadHeader(f)
}

func writeFileAtomic(filename string, writeFunc func(io.Writer) error) error {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	// Same directory, so the rename cannot cross file systems.
	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	_ = tmp.Chmod(0o644)

	buf := bufio.NewWriterSize(tmp, 256*1024)
	if err := writeFunc(buf); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, filename); err != nil {
		return err
	}
	tmpName = ""

	// Best effort: make the rename durable.
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}
	return nil
}
