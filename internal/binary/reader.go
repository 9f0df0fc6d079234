// Package binary provides type-safe little-endian reading primitives with
// bounds checking.
package binary

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/simonhull/seisfile/internal/types"
)

// Number is the set of fixed-width values found in recording headers.
type Number interface {
	uint16 | uint32 | uint64 | int32 | float64
}

// SafeReader wraps io.ReaderAt with bounds checking and helpful error messages.
type SafeReader struct {
	r    io.ReaderAt
	path string
	size int64
}

// NewSafeReader creates a new SafeReader.
func NewSafeReader(r io.ReaderAt, size int64, path string) *SafeReader {
	return &SafeReader{
		r:    r,
		size: size,
		path: path,
	}
}

// NewBytesReader creates a SafeReader over an in-memory header buffer.
func NewBytesReader(b []byte, path string) *SafeReader {
	return NewSafeReader(bytes.NewReader(b), int64(len(b)), path)
}

// ReadAt reads bytes at the given offset with context for error messages.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if off < 0 || off >= sr.size || off+int64(len(b)) > sr.size {
		return &types.OutOfBoundsError{
			Path:   sr.path,
			What:   what,
			Offset: off,
			Length: len(b),
			Size:   sr.size,
		}
	}

	n, err := sr.r.ReadAt(b, off)
	if err != nil && err != io.EOF {
		return fmt.Errorf("%s: failed to read %s at offset %d: %w", sr.path, what, off, err)
	}

	if n < len(b) {
		return fmt.Errorf("%s: short read for %s at offset %d: got %d bytes, expected %d",
			sr.path, what, off, n, len(b))
	}

	return nil
}

// sizeOf returns the encoded width of T in bytes.
func sizeOf[T Number]() int {
	var zero T
	switch any(zero).(type) {
	case uint16:
		return 2
	case uint32, int32:
		return 4
	default:
		return 8
	}
}

// ReadLE reads a little-endian value of type T at the given offset.
//
// Example:
//
//	channels, err := binary.ReadLE[uint16](sr, 0, "channel count")
func ReadLE[T Number](sr *SafeReader, off int64, what string) (T, error) {
	var zero T

	buf := make([]byte, sizeOf[T]())
	if err := sr.ReadAt(buf, off, what); err != nil {
		return zero, err
	}

	return decodeLE[T](buf), nil
}

// decodeLE converts a buffer of exactly sizeOf[T] bytes.
func decodeLE[T Number](buf []byte) T {
	var val T
	switch p := any(&val).(type) {
	case *uint16:
		*p = binary.LittleEndian.Uint16(buf)
	case *uint32:
		*p = binary.LittleEndian.Uint32(buf)
	case *uint64:
		*p = binary.LittleEndian.Uint64(buf)
	case *int32:
		*p = int32(binary.LittleEndian.Uint32(buf))
	case *float64:
		*p = math.Float64frombits(binary.LittleEndian.Uint64(buf))
	}
	return val
}

// ReadString reads a fixed-width ASCII field, trimming NUL padding and
// surrounding whitespace.
func ReadString(sr *SafeReader, off int64, length int, what string) (string, error) {
	buf := make([]byte, length)
	if err := sr.ReadAt(buf, off, what); err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.TrimRight(string(buf), "\x00")), nil
}

// ChainReader allows chaining multiple fixed-offset reads with deferred error
// checking. The first failure is kept along with the field that caused it.
type ChainReader struct {
	*SafeReader
	err    error
	field  string
	offset int64
}

// NewChainReader creates a new ChainReader.
func NewChainReader(sr *SafeReader) *ChainReader {
	return &ChainReader{SafeReader: sr}
}

// ReadChained reads a value with deferred error checking.
// If a previous read failed, returns zero value without attempting read.
func ReadChained[T Number](cr *ChainReader, off int64, what string) T {
	if cr.err != nil {
		var zero T
		return zero
	}

	val, err := ReadLE[T](cr.SafeReader, off, what)
	if err != nil {
		cr.fail(err, what, off)
		var zero T
		return zero
	}

	return val
}

// String reads a fixed-width string, accumulating any error.
func (cr *ChainReader) String(off int64, length int, what string) string {
	if cr.err != nil {
		return ""
	}

	val, err := ReadString(cr.SafeReader, off, length, what)
	if err != nil {
		cr.fail(err, what, off)
		return ""
	}

	return val
}

func (cr *ChainReader) fail(err error, what string, off int64) {
	cr.err = err
	cr.field = what
	cr.offset = off
}

// Error returns the accumulated error, if any.
func (cr *ChainReader) Error() error {
	return cr.err
}

// Failed returns the field name and offset of the first failed read.
func (cr *ChainReader) Failed() (string, int64) {
	return cr.field, cr.offset
}
