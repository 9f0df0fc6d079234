// Package types provides core data structures for seismic recording metadata.
//
// This package defines the Header, Coordinate, TimeInterval and record info
// types shared by the format decoders and the public seisfile API.
package types

import (
	"fmt"
	"math"
	"time"
)

// HeaderRegionSize is the fixed number of leading bytes every decoder reads.
const HeaderRegionSize = 336

// Header size geometry: a fixed base followed by one block per channel.
const (
	HeaderBaseSize       = 120
	HeaderPerChannelSize = 72
	SampleSize           = 4
)

// Coordinate is a geographic position in degrees.
type Coordinate struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Validate checks that both axes are finite and in range. Failures wrap
// ErrInvalidCoordinate.
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) || math.Abs(c.Latitude) > 90 {
		return fmt.Errorf("%w: latitude %v out of range", ErrInvalidCoordinate, c.Latitude)
	}
	if math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) || math.Abs(c.Longitude) > 180 {
		return fmt.Errorf("%w: longitude %v out of range", ErrInvalidCoordinate, c.Longitude)
	}
	return nil
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f, %.6f", c.Latitude, c.Longitude)
}

// Header is the canonical, format-independent view of a recording header.
//
// A Header is a value: each opened file owns its own copy.
type Header struct {
	StartTime    time.Time  `json:"start_time"`
	Coordinate   Coordinate `json:"coordinate"`
	Frequency    uint32     `json:"frequency"`
	ChannelCount uint16     `json:"channel_count"`
	Format       Format     `json:"format"`
}

// Size returns the full header length in bytes, including the per-channel
// blocks that are never decoded.
func (h Header) Size() int64 {
	return HeaderBaseSize + HeaderPerChannelSize*int64(h.ChannelCount)
}

// FrameSize returns the byte length of one multi-channel sample frame.
func (h Header) FrameSize() int64 {
	return SampleSize * int64(h.ChannelCount)
}
