package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt(t *testing.T) {
	t.Run("zero", func(t *testing.T) {
		got, err := Int(0)
		require.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("max int", func(t *testing.T) {
		got, err := Int(uint64(math.MaxInt))
		require.NoError(t, err)
		assert.Equal(t, math.MaxInt, got)
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := Int(math.MaxUint64)
		assert.ErrorIs(t, err, ErrOverflow)
	})
}

func TestUint32(t *testing.T) {
	got, err := Uint32(math.MaxUint32)
	require.NoError(t, err)
	assert.Equal(t, uint32(math.MaxUint32), got)

	_, err = Uint32(math.MaxUint32 + 1)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestUint64(t *testing.T) {
	got, err := Uint64(123)
	require.NoError(t, err)
	assert.Equal(t, uint64(123), got)

	_, err = Uint64(-1)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		bits uint64
		want int
	}{
		{0, 0},
		{1, 1},
		{63, 1},
		{64, 1},
		{65, 2},
		{128, 2},
		{129, 3},
	}

	for _, tt := range tests {
		got, err := WordCount(tt.bits)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "bits=%d", tt.bits)
	}
}
