package seisfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/seisfile/internal/numeric"
	"github.com/simonhull/seisfile/internal/registry"
	"github.com/simonhull/seisfile/internal/types"
)

// File represents an opened seismic recording with its decoded header.
//
// File holds no operating system resources: Open reads the header region
// and closes the file, and each Extract call maps the file for the duration
// of the call. Reopening a path decodes the header again.
//
// The read interval is the only mutable state. A File must not be used
// from multiple goroutines while the read interval is being changed.
//
//	file, err := seisfile.Open("record.00")
//	if err != nil {
//		return err
//	}
//	z, err := file.Extract(seisfile.ComponentZ)
type File struct {
	// Path to the recording
	Path string

	// Format detected from the extension
	Format Format

	// File size in bytes
	Size int64

	// Decoded header
	Header Header

	// Warnings encountered while decoding (lenient mode only)
	Warnings []Warning

	// Internal state (unexported)
	read       *TimeInterval // nil until the caller narrows the read interval
	nameParser NameParser
	logger     *slog.Logger
}

// Open opens a recording and decodes its header.
//
// Supported formats: Baikal7 (.00), Baikal8 (.xx), Sigma (.bin)
//
// Open fails with an OpenError wrapping ErrNotFound or
// ErrUnsupportedExtension before any header bytes are read, and with a
// HeaderError when decoding fails. A File is never returned with a partially
// decoded header.
func Open(path string, opts ...Option) (*File, error) {
	// Apply options
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	stat, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &OpenError{Path: path, Err: ErrNotFound}
		}
		return nil, &OpenError{Path: path, Err: fmt.Errorf("%w: stat: %v", ErrIO, err)}
	}
	if stat.IsDir() {
		return nil, &OpenError{Path: path, Err: fmt.Errorf("%w: is a directory", ErrNotFound)}
	}

	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	decoder := registry.Get(format)
	if decoder == nil {
		return nil, &OpenError{
			Path: path,
			Err:  fmt.Errorf("%w: no decoder for %s", ErrUnsupportedExtension, format),
		}
	}

	data, err := readHeaderRegion(path, stat.Size())
	if err != nil {
		return nil, &OpenError{Path: path, Err: fmt.Errorf("%w: %v", ErrIO, err)}
	}

	hdr, warnings, err := decoder.Decode(data, path, registry.DecodeOptions{Lenient: options.lenientHeaders})
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}

	file := &File{
		Path:       path,
		Format:     format,
		Size:       stat.Size(),
		Header:     hdr,
		Warnings:   warnings,
		nameParser: options.nameParser,
		logger:     options.logger,
	}

	for _, w := range warnings {
		file.log().Warn("lenient header decode", "path", path, "warning", w.String())
	}
	file.log().Debug("opened recording",
		"path", path,
		"format", format.String(),
		"channels", hdr.ChannelCount,
		"frequency", hdr.Frequency,
		"start", hdr.StartTime,
		"discrete_count", file.DiscreteCount(),
		"duration", file.DurationSeconds(),
	)

	return file, nil
}

// readHeaderRegion reads up to the fixed header region from the start of
// the file. Shorter files yield a shorter buffer.
func readHeaderRegion(path string, size int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	n := min(size, types.HeaderRegionSize)
	buf := make([]byte, n)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	return buf, nil
}

// OpenContext opens a file with context support for cancellation.
//
// This is a thin wrapper around Open() that checks context before starting.
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany opens multiple recordings concurrently.
//
// Files are decoded in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any file
// fails to open, the first error is returned and no files.
//
// Example:
//
//	files, err := seisfile.OpenMany(ctx, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, f := range files {
//		fmt.Printf("%s: %s\n", f.Format, f.FormattedDuration())
//	}
func OpenMany(ctx context.Context, paths []string, opts ...Option) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*File, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			file, err := Open(path, opts...)
			if err != nil {
				return err
			}

			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// HeaderSize returns the header length in bytes: 120 plus 72 per channel.
func (f *File) HeaderSize() int64 {
	return f.Header.Size()
}

// DiscreteCount returns the number of complete sample frames after the
// header. Files shorter than their header have none.
func (f *File) DiscreteCount() int64 {
	data := f.Size - f.HeaderSize()
	if data <= 0 {
		return 0
	}
	return data / f.Header.FrameSize()
}

// DurationSeconds returns the recording length in seconds, rounded to
// floor(log10(frequency)) decimal places (1000 Hz rounds to milliseconds).
func (f *File) DurationSeconds() float64 {
	return numeric.RoundToMagnitude(float64(f.DiscreteCount())/float64(f.Header.Frequency), f.Header.Frequency)
}

// Duration returns DurationSeconds as a time.Duration.
func (f *File) Duration() time.Duration {
	return time.Duration(math.Round(f.DurationSeconds() * float64(time.Second)))
}

// FormattedDuration renders the duration as "HH:MM:SS" or
// "<n> days HH:MM:SS".
func (f *File) FormattedDuration() string {
	return FormatDuration(f.DurationSeconds())
}

// OriginInterval returns the interval stated by the header, before any
// format-specific correction.
func (f *File) OriginInterval() TimeInterval {
	start := f.Header.StartTime
	return TimeInterval{Start: start, Stop: start.Add(f.Duration())}
}

// RecordInterval returns the origin interval shifted by the format record
// offset (2s for Sigma, none otherwise).
func (f *File) RecordInterval() TimeInterval {
	return f.OriginInterval().Shift(f.Format.RecordOffset())
}

// ReadInterval returns the interval Extract reads. It defaults to the record
// interval.
func (f *File) ReadInterval() TimeInterval {
	if f.read == nil {
		return f.RecordInterval()
	}
	return *f.read
}

// SetReadStart moves the start of the read interval.
//
// t must not precede the record start and must be before the record stop.
// It is not checked against the current read stop, so an inverted interval
// can be set; Extract returns no samples for it.
func (f *File) SetReadStart(t time.Time) error {
	if err := f.RecordInterval().ValidateStart(t); err != nil {
		return err
	}
	iv := f.ReadInterval()
	iv.Start = t
	f.read = &iv
	return nil
}

// SetReadStop moves the stop of the read interval.
//
// t must be after the record start and must not exceed the record stop.
func (f *File) SetReadStop(t time.Time) error {
	if err := f.RecordInterval().ValidateStop(t); err != nil {
		return err
	}
	iv := f.ReadInterval()
	iv.Stop = t
	f.read = &iv
	return nil
}

// SetReadInterval sets both ends of the read interval. Neither end changes
// unless both validate.
func (f *File) SetReadInterval(iv TimeInterval) error {
	record := f.RecordInterval()
	if err := record.ValidateStart(iv.Start); err != nil {
		return err
	}
	if err := record.ValidateStop(iv.Stop); err != nil {
		return err
	}
	f.read = &iv
	return nil
}

// ResetReadInterval restores the default read interval.
func (f *File) ResetReadInterval() {
	f.read = nil
}

// RecordInfo summarises the recording, with station metadata from the
// configured name parser.
func (f *File) RecordInfo() RecordFileInfo {
	record := f.RecordInterval()

	var name *NameInfo
	if f.nameParser != nil {
		name = f.nameParser(f.Path)
	}

	return RecordFileInfo{
		Path:          f.Path,
		Frequency:     f.Header.Frequency,
		DiscreteCount: f.DiscreteCount(),
		OriginName:    filepath.Base(f.Path),
		StartTime:     record.Start,
		StopTime:      record.Stop,
		NameInfo:      name,
	}
}
