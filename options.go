package seisfile

import (
	"log/slog"

	"github.com/simonhull/seisfile/internal/parsing"
)

// Option configures behavior when opening recordings.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	file, err := seisfile.Open("105_2023-01-15_10-00-00_Baikal8_CME.xx",
//	    seisfile.WithLogger(logger),
//	    seisfile.WithLenientHeaders(),
//	)
type Option func(*openOptions)

// NameParser derives station metadata from a recording path. It returns nil
// when the name carries no metadata.
type NameParser func(path string) *NameInfo

// openOptions holds configuration for opening files.
type openOptions struct {
	logger         *slog.Logger
	nameParser     NameParser
	lenientHeaders bool // Substitute placeholders for malformed Sigma fields
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		logger:         slog.New(slog.DiscardHandler),
		nameParser:     parsing.ParseName,
		lenientHeaders: false,
	}
}

// WithLogger sets the logger used for debug output.
//
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *openOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLenientHeaders tolerates unparsable Sigma timestamps and coordinates.
//
// By default such headers fail with a HeaderError. With this option the
// start time falls back to 2000-01-01T00:00:00Z and the coordinate to 0, 0,
// and a Warning is recorded in File.Warnings.
func WithLenientHeaders() Option {
	return func(o *openOptions) {
		o.lenientHeaders = true
	}
}

// WithNameParser replaces the file name parser used by File.RecordInfo.
//
// Passing nil disables name parsing.
func WithNameParser(p NameParser) Option {
	return func(o *openOptions) {
		if p == nil {
			p = func(string) *NameInfo { return nil }
		}
		o.nameParser = p
	}
}

// ExtractOption configures a single Extract call.
type ExtractOption func(*extractOptions)

type extractOptions struct {
	frequency  uint32 // Target frequency; defaults to the file frequency
	removeMean bool
}

// WithResampleFrequency decimates the extracted samples to hz by summing
// blocks of frequency/hz samples. hz must divide the file frequency.
func WithResampleFrequency(hz uint32) ExtractOption {
	return func(o *extractOptions) {
		o.frequency = hz
	}
}

// WithRemoveMean subtracts the integer mean from the (resampled) samples.
func WithRemoveMean() ExtractOption {
	return func(o *extractOptions) {
		o.removeMean = true
	}
}
