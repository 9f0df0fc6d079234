package seisfile

import (
	"github.com/simonhull/seisfile/internal/types"
)

// OpenError is an alias to types.OpenError.
// Re-exporting from internal/types to maintain public API.
type OpenError = types.OpenError

// HeaderError is an alias to types.HeaderError.
// Re-exporting from internal/types to maintain public API.
type HeaderError = types.HeaderError

// ExtractError is an alias to types.ExtractError.
// Re-exporting from internal/types to maintain public API.
type ExtractError = types.ExtractError

// IntervalError is an alias to types.IntervalError.
// Re-exporting from internal/types to maintain public API.
type IntervalError = types.IntervalError

// OutOfBoundsError is an alias to types.OutOfBoundsError.
// It matches ErrTruncated with errors.Is.
type OutOfBoundsError = types.OutOfBoundsError

// Warning is an alias to types.Warning.
type Warning = types.Warning

// Sentinel errors wrapped by the typed errors above.
var (
	ErrNotFound             = types.ErrNotFound
	ErrUnsupportedExtension = types.ErrUnsupportedExtension

	ErrTruncated           = types.ErrTruncated
	ErrInvalidTimestamp    = types.ErrInvalidTimestamp
	ErrInvalidCoordinate   = types.ErrInvalidCoordinate
	ErrInvalidChannelCount = types.ErrInvalidChannelCount
	ErrInvalidFrequency    = types.ErrInvalidFrequency

	ErrIO                       = types.ErrIO
	ErrUnknownComponent         = types.ErrUnknownComponent
	ErrComponentOutOfRange      = types.ErrComponentOutOfRange
	ErrInvalidResampleFrequency = types.ErrInvalidResampleFrequency

	ErrInvalidDateTime = types.ErrInvalidDateTime
)
