package seisfile

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/simonhull/seisfile/internal/signal"
	"github.com/simonhull/seisfile/internal/types"
)

// Component identifies one record axis.
type Component byte

// Record components, in column order.
const (
	ComponentZ Component = 'Z'
	ComponentX Component = 'X'
	ComponentY Component = 'Y'
)

// Components lists the record components in column order.
func Components() []Component {
	return []Component{ComponentZ, ComponentX, ComponentY}
}

// ParseComponent parses a component letter, case-insensitively.
func ParseComponent(s string) (Component, error) {
	if len(s) != 1 || strings.IndexByte(signal.ComponentOrder, strings.ToUpper(s)[0]) < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownComponent, s)
	}
	return Component(strings.ToUpper(s)[0]), nil
}

func (c Component) String() string {
	return string(rune(c))
}

// Extract reads one component's samples over the read interval.
//
// The read interval is converted to frame indices relative to the record
// start (rounded half to even), trimmed to a whole number of resample
// blocks and to the frames present in the file, and read through a
// read-only memory mapping that is released before Extract returns. With
// WithResampleFrequency the samples are block-summed; WithRemoveMean then
// subtracts their integer mean.
//
// Example:
//
//	z, err := file.Extract(seisfile.ComponentZ,
//	    seisfile.WithResampleFrequency(100),
//	    seisfile.WithRemoveMean(),
//	)
func (f *File) Extract(component Component, opts ...ExtractOption) ([]int32, error) {
	options := &extractOptions{frequency: f.Header.Frequency}
	for _, opt := range opts {
		opt(options)
	}

	block, ok := signal.BlockSize(f.Header.Frequency, options.frequency)
	if !ok {
		return nil, f.extractError(component, fmt.Errorf("%w: %d Hz from %d Hz",
			ErrInvalidResampleFrequency, options.frequency, f.Header.Frequency))
	}

	column, err := signal.Column(byte(component), f.Header.ChannelCount)
	if err != nil {
		return nil, f.extractError(component, err)
	}

	w := f.window(column, block)
	f.log().Debug("extracting samples",
		"path", f.Path,
		"component", component.String(),
		"offset", w.Offset(),
		"stride", w.Stride(),
		"count", w.Count,
		"block", block,
	)

	samples, err := signal.ReadFile(f.Path, w)
	if err != nil {
		return nil, f.extractError(component, err)
	}

	samples = signal.Resample(samples, block)
	if options.removeMean {
		signal.RemoveMean(samples)
	}
	return samples, nil
}

// window converts the read interval into a frame window for column.
func (f *File) window(column, block int) signal.Window {
	record := f.RecordInterval()
	read := f.ReadInterval()
	freq := float64(f.Header.Frequency)

	start := int64(math.RoundToEven(read.Start.Sub(record.Start).Seconds() * freq))
	end := int64(math.RoundToEven(read.Stop.Sub(record.Start).Seconds() * freq))
	// Duration rounding can place the record stop a frame past the data.
	end = min(end, f.DiscreteCount())

	length := end - start
	if length > 0 {
		length -= length % int64(block)
	}

	return signal.Window{
		HeaderSize: f.HeaderSize(),
		Channels:   int64(f.Header.ChannelCount),
		Column:     int64(column),
		Start:      start,
		Count:      length,
	}
}

func (f *File) extractError(component Component, err error) error {
	return &types.ExtractError{
		Path:      f.Path,
		Component: component.String(),
		Err:       err,
	}
}

func (f *File) log() *slog.Logger {
	if f.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return f.logger
}
