package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitkit/bitarray"
)

func TestDelegateForwardsReads(t *testing.T) {
	base := New(newArray(t, []uint64{0xDDCC_BBAA}, 32))
	require.NoError(t, base.Skip(8))

	d, err := base.Bound(16)
	require.NoError(t, err)
	assert.Equal(t, KindDelegate, d.Kind())
	assert.Equal(t, uint64(16), d.Length())
	assert.Equal(t, uint64(0), d.Position())

	b, err := d.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0xBB), b)
	assert.Equal(t, uint64(16), base.Position())
	assert.Equal(t, uint64(8), d.Position())
	assert.Equal(t, uint64(8), d.Remaining())

	_, err = d.ReadBits(9)
	assert.ErrorIs(t, err, bitarray.ErrOutOfRange)
	assert.Equal(t, uint64(16), base.Position())

	require.NoError(t, d.Seek(0))
	assert.Equal(t, uint64(8), base.Position())
	assert.ErrorIs(t, d.Seek(17), bitarray.ErrOutOfRange)

	_, err = base.Bound(25)
	assert.ErrorIs(t, err, bitarray.ErrOutOfRange)
}

func TestDelegateObservesBaseMoves(t *testing.T) {
	base := New(bitarray.New(64))
	require.NoError(t, base.Seek(8))
	d, err := base.Bound(16)
	require.NoError(t, err)

	require.NoError(t, base.Skip(4))
	assert.Equal(t, uint64(4), d.Position())

	require.NoError(t, base.Seek(0))
	assert.ErrorIs(t, d.Err(), ErrInvalidState)
	_, err = d.ReadBit()
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.ErrorIs(t, d.Skip(1), ErrInvalidState)
	assert.Panics(t, func() { d.Position() })

	require.NoError(t, base.Seek(25))
	assert.ErrorIs(t, d.Err(), ErrInvalidState)

	require.NoError(t, base.Seek(10))
	require.NoError(t, d.Err())
	assert.Equal(t, uint64(2), d.Position())
}

func TestDelegateOfDelegate(t *testing.T) {
	base := New(bitarray.New(64))
	outer, err := base.Bound(32)
	require.NoError(t, err)
	require.NoError(t, outer.Skip(8))

	inner, err := outer.Bound(8)
	require.NoError(t, err)
	_, err = inner.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint64(16), base.Position())
	assert.Equal(t, uint64(16), outer.Position())

	_, err = inner.ReadBit()
	assert.ErrorIs(t, err, bitarray.ErrOutOfRange)

	_, err = outer.Bound(17)
	assert.ErrorIs(t, err, bitarray.ErrOutOfRange)

	require.NoError(t, base.Seek(40))
	assert.ErrorIs(t, inner.Err(), ErrInvalidState)
}

func TestDelegateSub(t *testing.T) {
	base := New(newArray(t, []uint64{0xDDCC_BBAA}, 32))
	d, err := base.Bound(16)
	require.NoError(t, err)

	child, err := d.Sub(16)
	require.NoError(t, err)
	assert.Equal(t, KindTagAlong, child.Kind())

	b, err := child.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0xAA), b)
	assert.Equal(t, uint64(8), base.Position())

	// The base leaves the delegate's window; the child can no longer move it.
	require.NoError(t, base.Seek(20))
	_, err = child.ReadUint8()
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Equal(t, uint64(20), base.Position())
	assert.Equal(t, uint64(8), child.Position())
}

func TestDelegateClones(t *testing.T) {
	base := New(newArray(t, []uint64{0xDDCC_BBAA}, 32))
	require.NoError(t, base.Skip(8))
	d, err := base.Bound(16)
	require.NoError(t, err)
	require.NoError(t, d.Skip(8))

	cl := d.Clone()
	assert.Equal(t, KindIndependent, cl.Kind())
	assert.Equal(t, uint64(16), cl.Length())
	assert.Equal(t, uint64(8), cl.Position())
	b, err := cl.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0xCC), b)
	assert.Equal(t, uint64(16), base.Position())

	r, err := d.CloneRange(0, 8)
	require.NoError(t, err)
	b, err = r.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0xBB), b)

	_, err = d.CloneRange(0, 17)
	assert.ErrorIs(t, err, bitarray.ErrOutOfRange)

	det, err := d.SubDetached(8)
	require.NoError(t, err)
	b, err = det.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0xCC), b)
	assert.Equal(t, uint64(16), base.Position())
}

func TestDelegateIndexOf(t *testing.T) {
	arr := bitarray.FromBools([]bool{true, false, false, false, true, false, true})
	base := New(arr)
	require.NoError(t, base.Skip(1))
	d, err := base.Bound(4)
	require.NoError(t, err)

	idx, err := d.IndexOf(1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), idx)

	idx, err = d.IndexOf(0b101, 3)
	require.NoError(t, err)
	assert.Equal(t, NotFound, idx, "match at base position 4..6 exceeds the window")
}
