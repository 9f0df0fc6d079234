package types

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors. Every typed error below wraps one of these so callers can
// match with errors.Is.
var (
	ErrNotFound             = errors.New("file not found")
	ErrUnsupportedExtension = errors.New("unsupported extension")

	ErrTruncated           = errors.New("truncated header")
	ErrInvalidTimestamp    = errors.New("invalid timestamp")
	ErrInvalidCoordinate   = errors.New("invalid coordinate")
	ErrInvalidChannelCount = errors.New("invalid channel count")
	ErrInvalidFrequency    = errors.New("invalid frequency")

	ErrIO                       = errors.New("i/o failure")
	ErrUnknownComponent         = errors.New("unknown component")
	ErrComponentOutOfRange      = errors.New("component out of range")
	ErrInvalidResampleFrequency = errors.New("invalid resample frequency")

	ErrInvalidDateTime = errors.New("invalid datetime")
)

// OutOfBoundsError is returned when attempting to read beyond buffer bounds.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (size: %d) while reading %s",
			e.Path, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed size %d while reading %s",
		e.Path, e.Length, e.Offset, e.Size, e.What)
}

// Is reports an out-of-bounds header read as a truncated header.
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrTruncated
}

// OpenError is returned when a path cannot be opened as a recording.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("%s: open: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// HeaderError is returned when a header field cannot be decoded.
type HeaderError struct {
	Path   string
	Format Format
	Field  string
	Offset int64
	Err    error
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("%s: %s header field %q at offset %d: %v",
		e.Path, e.Format, e.Field, e.Offset, e.Err)
}

func (e *HeaderError) Unwrap() error { return e.Err }

// ExtractError is returned when samples cannot be extracted.
type ExtractError struct {
	Path      string
	Component string
	Err       error
}

func (e *ExtractError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("%s: extract component %s: %v", e.Path, e.Component, e.Err)
	}
	return fmt.Sprintf("%s: extract: %v", e.Path, e.Err)
}

func (e *ExtractError) Unwrap() error { return e.Err }

// IntervalError is returned when a read interval bound falls outside the
// record interval.
type IntervalError struct {
	Bound  string // "start" or "stop"
	Value  time.Time
	Record TimeInterval
	Err    error
}

func (e *IntervalError) Error() string {
	return fmt.Sprintf("read %s %s outside record interval %s: %v",
		e.Bound, e.Value.Format(time.RFC3339Nano), e.Record, e.Err)
}

func (e *IntervalError) Unwrap() error { return e.Err }

// Warning represents a non-fatal issue encountered during decoding.
type Warning struct {
	// Stage where the warning occurred ("header", "name")
	Stage string

	// Warning message
	Message string

	// Header offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
