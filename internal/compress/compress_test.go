package compress

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitkit/testutil"
)

func TestRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(4711)
	random := make([]byte, 0, 4096)
	for _, w := range rng.Words(512) {
		random = binary.LittleEndian.AppendUint64(random, w)
	}

	inputs := map[string][]byte{
		"empty":      {},
		"zeros":      make([]byte, 64*1024),
		"repetitive": bytes.Repeat([]byte("0110"), 4096),
		"random":     random,
	}

	for _, typ := range []Type{None, LZ4, ZSTD} {
		for name, data := range inputs {
			t.Run(typ.String()+"/"+name, func(t *testing.T) {
				block, err := Compress(data, typ)
				require.NoError(t, err)

				got, err := Decompress(block, typ)
				require.NoError(t, err)
				assert.Equal(t, len(data), len(got))
				assert.True(t, bytes.Equal(data, got))
			})
		}
	}
}

func TestCompressShrinksRepetitiveData(t *testing.T) {
	data := make([]byte, 64*1024)
	for _, typ := range []Type{LZ4, ZSTD} {
		block, err := Compress(data, typ)
		require.NoError(t, err)
		assert.Less(t, len(block), len(data)/10, typ.String())
		assert.NotZero(t, binary.LittleEndian.Uint32(block[4:]), "block should be marked compressed")
	}
}

func TestIncompressibleDataIsStored(t *testing.T) {
	rng := testutil.NewRNG(4711)
	data := make([]byte, 0, 1024)
	for _, w := range rng.Words(128) {
		data = binary.LittleEndian.AppendUint64(data, w)
	}

	block, err := Compress(data, LZ4)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(block[4:]))
	assert.Len(t, block, HeaderSize+len(data))
}

func TestDecompressCorrupt(t *testing.T) {
	_, err := Decompress([]byte{1, 2, 3}, LZ4)
	assert.ErrorIs(t, err, ErrCorrupt)

	block, err := Compress(make([]byte, 4096), ZSTD)
	require.NoError(t, err)

	_, err = Decompress(block[:len(block)-1], ZSTD)
	assert.ErrorIs(t, err, ErrCorrupt)

	_, err = Decompress(block, None)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestUnknownType(t *testing.T) {
	_, err := Compress([]byte{1}, Type(9))
	assert.Error(t, err)
	assert.False(t, Type(9).Valid())
	assert.Equal(t, "Type(9)", Type(9).String())
}
