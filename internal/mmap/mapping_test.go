//go:build unix

package mmap

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenWordsCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bits.raw")

	m, err := OpenWords(path, 130)
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, path, m.Path())
	assert.Equal(t, 24, m.Size())
	assert.Equal(t, []uint64{0, 0, 0}, m.Words())

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(24), fi.Size())
}

func TestWritesReachFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bits.raw")

	m, err := OpenWords(path, 128)
	require.NoError(t, err)
	m.Words()[1] = 0xDEAD_BEEF
	require.NoError(t, m.Sync())
	require.NoError(t, m.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, data, 16)
	assert.Equal(t, uint64(0xDEAD_BEEF), binary.LittleEndian.Uint64(data[8:]))
}

func TestExistingContentIsMapped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bits.raw")
	data := binary.LittleEndian.AppendUint64(nil, 0b1011)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	m, err := OpenWords(path, 64)
	require.NoError(t, err)
	defer m.Close()
	assert.Equal(t, []uint64{0b1011}, m.Words())
}

func TestResize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bits.raw")
	require.NoError(t, os.WriteFile(path, make([]byte, 40), 0o644))

	m, err := OpenWords(path, 64)
	require.NoError(t, err)
	require.NoError(t, m.Close())

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(8), fi.Size())
}

func TestEmptyMapping(t *testing.T) {
	m, err := OpenWords(filepath.Join(t.TempDir(), "empty.raw"), 0)
	require.NoError(t, err)
	assert.Empty(t, m.Words())
	assert.NoError(t, m.Sync())
	assert.NoError(t, m.Advise(AccessSequential))
	assert.NoError(t, m.Close())
}

func TestClose(t *testing.T) {
	m, err := OpenWords(filepath.Join(t.TempDir(), "bits.raw"), 64)
	require.NoError(t, err)

	require.NoError(t, m.Advise(AccessRandom))
	require.NoError(t, m.Close())
	require.NoError(t, m.Close(), "close is idempotent")

	assert.Nil(t, m.Words())
	assert.ErrorIs(t, m.Sync(), ErrClosed)
	assert.ErrorIs(t, m.Advise(AccessWillNeed), ErrClosed)
}

func TestOpenWordsMissingDir(t *testing.T) {
	_, err := OpenWords(filepath.Join(t.TempDir(), "missing", "bits.raw"), 64)
	assert.Error(t, err)
}
