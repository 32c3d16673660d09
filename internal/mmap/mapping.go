package mmap

import (
	"fmt"
	"math"
	"os"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/cpu"

	"github.com/hupe1980/bitkit/internal/conv"
)

// Mapping is a read-write shared mapping of a word file.
type Mapping struct {
	path   string
	data   []byte
	words  []uint64
	closed atomic.Bool
	unmap  func([]byte) error
}

// OpenWords maps the file at path as enough 64-bit words to hold n bits.
// The file is created if it does not exist and truncated or extended to the
// exact size; extended regions read as zero.
func OpenWords(path string, n uint64) (*Mapping, error) {
	if cpu.IsBigEndian {
		return nil, ErrBigEndian
	}
	wc, err := conv.WordCount(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, err)
	}
	if wc > math.MaxInt/8 {
		return nil, fmt.Errorf("%w: %d words", ErrInvalidSize, wc)
	}
	size := wc * 8

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := f.Truncate(int64(size)); err != nil {
		return nil, err
	}

	m := &Mapping{path: path}
	if size == 0 {
		return m, nil
	}

	data, unmap, err := osMap(f, size)
	if err != nil {
		return nil, err
	}
	m.data = data
	m.unmap = unmap
	m.words = unsafe.Slice((*uint64)(unsafe.Pointer(&data[0])), wc)
	return m, nil
}

// Path returns the mapped file's path.
func (m *Mapping) Path() string {
	return m.path
}

// Words returns the mapped words. The slice aliases the file and is valid
// only until Close.
func (m *Mapping) Words() []uint64 {
	if m.closed.Load() {
		return nil
	}
	return m.words
}

// Size returns the size of the mapping in bytes.
func (m *Mapping) Size() int {
	return len(m.data)
}

// Sync flushes modified words to the file.
func (m *Mapping) Sync() error {
	if m.closed.Load() {
		return ErrClosed
	}
	if len(m.data) == 0 {
		return nil
	}
	return osSync(m.data)
}

// Advise provides hints to the kernel about how the memory will be accessed.
func (m *Mapping) Advise(pattern AccessPattern) error {
	if m.closed.Load() {
		return ErrClosed
	}
	if len(m.data) == 0 {
		return nil
	}
	return osAdvise(m.data, pattern)
}

// Close flushes and unmaps the memory. It is idempotent.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return nil
	}
	if m.unmap == nil || m.data == nil {
		return nil
	}
	err := osSync(m.data)
	if uerr := m.unmap(m.data); err == nil {
		err = uerr
	}
	m.data, m.words = nil, nil
	return err
}
