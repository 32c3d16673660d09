package bitkit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/bitkit/bitarray"
	"github.com/hupe1980/bitkit/internal/conv"
	"github.com/hupe1980/bitkit/internal/mmap"
	"github.com/hupe1980/bitkit/internal/resource"
	"github.com/hupe1980/bitkit/persistence"
)

// Save atomically writes a snapshot of arr to path.
func Save(ctx context.Context, path string, arr *bitarray.Array, optFns ...Option) error {
	if arr == nil || path == "" {
		return fmt.Errorf("%w: save needs an array and a path", ErrInvalidArgument)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	o := applyOptions(optFns)
	start := time.Now()
	err := translateError(persistence.SaveToFile(path, arr, o.compression))
	o.metricsCollector.RecordSave(arr.Len(), time.Since(start), err)
	o.logger.LogSave(ctx, path, arr.Len(), o.compression, err)
	return err
}

// Load reads the snapshot at path. The returned array is solely owned.
func Load(ctx context.Context, path string, optFns ...Option) (*bitarray.Array, error) {
	o := applyOptions(optFns)
	return load(ctx, path, &o, newController(o.resources))
}

func newController(cfg resource.Config) *resource.Controller {
	if !cfg.Enabled() {
		return nil
	}
	return resource.NewController(cfg)
}

func load(ctx context.Context, path string, o *options, rc *resource.Controller) (*bitarray.Array, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidArgument)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	arr, err := loadLimited(ctx, path, rc)
	err = translateError(err)

	var bits uint64
	if arr != nil {
		bits = arr.Len()
	}
	o.metricsCollector.RecordLoad(bits, time.Since(start), err)
	o.logger.LogLoad(ctx, path, bits, err)
	if err != nil {
		return nil, err
	}
	return arr, nil
}

// loadLimited reserves the decoded size and the read bandwidth of path
// before decoding it. Successful reservations are never released, so rc
// budgets one Load or LoadAll call.
func loadLimited(ctx context.Context, path string, rc *resource.Controller) (*bitarray.Array, error) {
	if rc == nil {
		return persistence.LoadFromFile(path)
	}

	h, err := persistence.ReadFileHeader(path)
	if err != nil {
		return nil, err
	}
	wc, err := conv.WordCount(h.Length)
	if err != nil {
		return nil, err
	}
	size := int64(wc) * 8
	if err := rc.AcquireMemory(size); err != nil {
		return nil, err
	}
	if err := rc.AcquireIO(ctx, persistence.HeaderSize+int64(h.PayloadSize)); err != nil {
		rc.ReleaseMemory(size)
		return nil, err
	}

	arr, err := persistence.LoadFromFile(path)
	if err != nil {
		rc.ReleaseMemory(size)
		return nil, err
	}
	return arr, nil
}

// LoadAll reads several snapshots concurrently, at most WithParallelism at a
// time. Results are in the order of paths. The first failure cancels the
// remaining loads and is returned.
func LoadAll(ctx context.Context, paths []string, optFns ...Option) ([]*bitarray.Array, error) {
	o := applyOptions(optFns)
	rc := newController(o.resources)
	out := make([]*bitarray.Array, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallelism)

	for i, path := range paths {
		g.Go(func() error {
			arr, err := load(gctx, path, &o, rc)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}
			out[i] = arr
			return nil
		})
	}

	err := g.Wait()
	o.logger.LogLoadAll(ctx, len(paths), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Mapping is a bit array backed by a memory-mapped word file.
type Mapping struct {
	mu     sync.Mutex
	m      *mmap.Mapping
	arr    *bitarray.Array
	logger *Logger
}

// Map opens (creating if needed) the raw word file at path and returns a
// mapping holding n bits. The file holds ceil(n/64) little-endian words and
// nothing else; it is resized to exactly that. Mutations through Array are
// written to the file; call Sync to flush them.
func Map(path string, n uint64, optFns ...Option) (*Mapping, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidArgument)
	}
	o := applyOptions(optFns)
	ctx := context.Background()

	m, err := mmap.OpenWords(path, n)
	if err != nil {
		err = translateError(err)
		o.metricsCollector.RecordMap(n, err)
		o.logger.LogMap(ctx, "map", path, n, err)
		return nil, err
	}

	arr, err := bitarray.NewShared(bitarray.Share(m.Words()), n)
	if err != nil {
		_ = m.Close()
		err = translateError(err)
		o.metricsCollector.RecordMap(n, err)
		return nil, err
	}
	_ = m.Advise(mmap.AccessRandom)

	o.metricsCollector.RecordMap(n, nil)
	o.logger.LogMap(ctx, "map", path, n, nil)
	return &Mapping{m: m, arr: arr, logger: o.logger}, nil
}

// Array returns the mapped array, or nil after Close. Arrays obtained earlier
// must not be used after Close.
func (mp *Mapping) Array() *bitarray.Array {
	return mp.arr
}

// Path returns the mapped file's path.
func (mp *Mapping) Path() string {
	return mp.m.Path()
}

// Sync flushes mutations to the file.
func (mp *Mapping) Sync() error {
	return translateError(mp.m.Sync())
}

// Close flushes and unmaps the file. It is idempotent.
func (mp *Mapping) Close() error {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	if mp.arr == nil {
		return nil
	}
	bits := mp.arr.Len()
	mp.arr = nil

	err := translateError(mp.m.Close())
	mp.logger.LogMap(context.Background(), "unmap", mp.m.Path(), bits, err)
	return err
}
