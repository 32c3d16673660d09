// Package resource bounds what a batch of snapshot loads may consume.
//
// A Controller tracks two budgets:
//
//   - Memory: bytes of decoded bit arrays (non-blocking, fail-fast)
//   - IO: bytes read from disk per second (token bucket, blocking)
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes:   1 << 30,
//	    IOLimitBytesPerSec: 64 << 20,
//	})
//
//	if err := rc.AcquireMemory(size); err != nil {
//	    // ErrMemoryLimitExceeded
//	}
//	if err := rc.AcquireIO(ctx, stored); err != nil {
//	    return err
//	}
//
// All methods are safe for concurrent use and a nil *Controller is a no-op,
// so callers never need to check whether limits were configured.
package resource
