package bitkit

import (
	"bytes"
	"context"
	"encoding/binary"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitkit/bitarray"
	"github.com/hupe1980/bitkit/testutil"
)

func randomArray(t *testing.T, rng *testutil.RNG, n uint64) *bitarray.Array {
	t.Helper()
	arr, err := bitarray.FromWords(rng.Words(int(n/64)+1), n)
	require.NoError(t, err)
	return arr
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(4711)
	dir := t.TempDir()

	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			arr := randomArray(t, rng, 1000)
			path := filepath.Join(dir, c.String()+".bka")

			require.NoError(t, Save(ctx, path, arr, WithCompression(c)))
			got, err := Load(ctx, path)
			require.NoError(t, err)
			assert.True(t, arr.Equal(got))
		})
	}
}

func TestSaveInvalidArgument(t *testing.T) {
	ctx := context.Background()
	assert.ErrorIs(t, Save(ctx, "", bitarray.New(1)), ErrInvalidArgument)
	assert.ErrorIs(t, Save(ctx, filepath.Join(t.TempDir(), "x.bka"), nil), ErrInvalidArgument)

	_, err := Load(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "x.bka")
	assert.ErrorIs(t, Save(ctx, path, bitarray.New(8)), context.Canceled)

	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadErrors(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "bits.bka")
	require.NoError(t, Save(ctx, path, bitarray.FromBools([]bool{true, false, true})))

	valid, err := os.ReadFile(path)
	require.NoError(t, err)

	t.Run("missing", func(t *testing.T) {
		_, err := Load(ctx, filepath.Join(dir, "missing.bka"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("corrupt", func(t *testing.T) {
		data := bytes.Clone(valid)
		data[len(data)-1] ^= 0x01
		p := filepath.Join(dir, "corrupt.bka")
		require.NoError(t, os.WriteFile(p, data, 0o644))

		_, err := Load(ctx, p)
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("truncated", func(t *testing.T) {
		p := filepath.Join(dir, "truncated.bka")
		require.NoError(t, os.WriteFile(p, valid[:len(valid)-2], 0o644))

		_, err := Load(ctx, p)
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("future version", func(t *testing.T) {
		data := bytes.Clone(valid)
		binary.LittleEndian.PutUint32(data[4:], 2)
		p := filepath.Join(dir, "v2.bka")
		require.NoError(t, os.WriteFile(p, data, 0o644))

		_, err := Load(ctx, p)
		assert.ErrorIs(t, err, ErrIncompatibleFormat)
	})
}

func TestLoadAll(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(4711)
	dir := t.TempDir()

	var paths []string
	var want []*bitarray.Array
	for i := 0; i < 12; i++ {
		arr := randomArray(t, rng, uint64(100+i*37))
		path := filepath.Join(dir, "bits-"+string(rune('a'+i))+".bka")
		require.NoError(t, Save(ctx, path, arr))
		paths = append(paths, path)
		want = append(want, arr)
	}

	got, err := LoadAll(ctx, paths, WithParallelism(3))
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].Equal(got[i]), "file %d", i)
	}

	empty, err := LoadAll(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = LoadAll(ctx, append(paths, filepath.Join(dir, "missing.bka")))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResourceLimits(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	var paths []string
	for i := 0; i < 4; i++ {
		path := filepath.Join(dir, "bits-"+string(rune('a'+i))+".bka")
		require.NoError(t, Save(ctx, path, bitarray.New(64*100)))
		paths = append(paths, path)
	}

	// Each array decodes to 800 bytes.
	got, err := LoadAll(ctx, paths, WithResourceLimits(3200, 1<<20))
	require.NoError(t, err)
	assert.Len(t, got, 4)

	_, err = LoadAll(ctx, paths, WithResourceLimits(3000, 0))
	assert.ErrorIs(t, err, ErrResourceExhausted)

	_, err = Load(ctx, paths[0], WithResourceLimits(799, 0))
	assert.ErrorIs(t, err, ErrResourceExhausted)

	arr, err := Load(ctx, paths[0], WithResourceLimits(800, 0))
	require.NoError(t, err)
	assert.Equal(t, uint64(6400), arr.Len())
}

func TestMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bits.raw")

	m, err := Map(path, 100)
	require.NoError(t, err)
	assert.Equal(t, path, m.Path())

	arr := m.Array()
	assert.True(t, arr.IsShared())
	assert.Equal(t, uint64(100), arr.Len())
	require.NoError(t, arr.Set(70, true))
	require.NoError(t, m.Sync())
	require.NoError(t, m.Close())
	require.NoError(t, m.Close(), "close is idempotent")

	assert.Nil(t, m.Array())
	assert.ErrorIs(t, m.Sync(), ErrClosed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, data, 16)
	assert.Equal(t, uint64(1)<<6, binary.LittleEndian.Uint64(data[8:]))

	m, err = Map(path, 100)
	require.NoError(t, err)
	defer m.Close()
	got, err := m.Array().Get(70)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestMapInvalidArgument(t *testing.T) {
	_, err := Map("", 10)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestMetricsCollector(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	mc := &BasicMetricsCollector{}

	path := filepath.Join(dir, "bits.bka")
	require.NoError(t, Save(ctx, path, bitarray.New(64), WithMetricsCollector(mc)))
	_, err := Load(ctx, path, WithMetricsCollector(mc))
	require.NoError(t, err)
	_, err = Load(ctx, filepath.Join(dir, "missing.bka"), WithMetricsCollector(mc))
	require.Error(t, err)

	m, err := Map(filepath.Join(dir, "bits.raw"), 64, WithMetricsCollector(mc))
	require.NoError(t, err)
	require.NoError(t, m.Close())

	stats := mc.GetStats()
	assert.Equal(t, int64(1), stats.SaveCount)
	assert.Equal(t, uint64(64), stats.SaveBits)
	assert.Equal(t, int64(2), stats.LoadCount)
	assert.Equal(t, int64(1), stats.LoadErrors)
	assert.Equal(t, uint64(64), stats.LoadBits)
	assert.Equal(t, int64(1), stats.MapCount)
	assert.Zero(t, stats.MapErrors)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bits.bka")
	require.NoError(t, Save(ctx, path, bitarray.New(8), WithLogger(logger), WithCompression(CompressionZSTD)))
	_, err := Load(ctx, path, WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"snapshot saved"`)
	assert.Contains(t, out, `"compression":"zstd"`)
	assert.Contains(t, out, `"msg":"snapshot loaded"`)
	assert.Contains(t, out, `"bits":8`)
}

func TestNilOptions(t *testing.T) {
	o := applyOptions([]Option{nil, WithLogger(nil), WithMetricsCollector(nil), WithParallelism(0)})
	assert.NotNil(t, o.logger)
	assert.Equal(t, NoopMetricsCollector{}, o.metricsCollector)
	assert.Equal(t, CompressionLZ4, o.compression)
	assert.GreaterOrEqual(t, o.parallelism, 1)
}
