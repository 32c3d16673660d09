package bitkit

import (
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/bitkit/bitarray"
	"github.com/hupe1980/bitkit/internal/mmap"
	"github.com/hupe1980/bitkit/internal/resource"
	"github.com/hupe1980/bitkit/persistence"
)

var (
	// ErrInvalidArgument is returned for nil arrays, empty paths and out-of-range sizes.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCorrupt is returned when a snapshot fails its checksum or cannot be decoded.
	ErrCorrupt = errors.New("data corruption detected")

	// ErrIncompatibleFormat is returned for snapshots written by an unsupported
	// version and for hosts that cannot map the raw word format.
	ErrIncompatibleFormat = errors.New("incompatible format")

	// ErrClosed is returned when a Mapping is used after Close.
	ErrClosed = errors.New("mapping closed")

	// ErrResourceExhausted is returned when a load would exceed WithResourceLimits.
	ErrResourceExhausted = errors.New("resource limit exceeded")
)

func translateError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, persistence.ErrInvalidMagic),
		errors.Is(err, persistence.ErrInvalidVersion),
		errors.Is(err, persistence.ErrInvalidCompression),
		errors.Is(err, mmap.ErrBigEndian),
		errors.Is(err, mmap.ErrUnsupported):
		return fmt.Errorf("%w: %w", ErrIncompatibleFormat, err)

	case persistence.IsChecksumMismatch(err),
		errors.Is(err, persistence.ErrInvalidPayload),
		errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: %w", ErrCorrupt, err)

	case errors.Is(err, resource.ErrMemoryLimitExceeded):
		return fmt.Errorf("%w: %w", ErrResourceExhausted, err)

	case errors.Is(err, mmap.ErrClosed):
		return fmt.Errorf("%w: %w", ErrClosed, err)

	case errors.Is(err, mmap.ErrInvalidSize),
		errors.Is(err, bitarray.ErrOutOfRange):
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return err
}
