// Package baikal7 decodes Baikal-7 (.00) recording headers.
package baikal7

import (
	"time"

	"github.com/simonhull/seisfile/internal/binary"
	"github.com/simonhull/seisfile/internal/numeric"
	"github.com/simonhull/seisfile/internal/registry"
	"github.com/simonhull/seisfile/internal/types"
)

// Header field offsets.
const (
	offsetChannelCount = 0
	offsetFrequency    = 22
	offsetLatitude     = 72
	offsetLongitude    = 80
	offsetTimeBase     = 104
)

// ticksPerSecond is the resolution of the time-base counter.
const ticksPerSecond = 256_000_000

// coordinatePlaces is the precision coordinates are rounded to.
const coordinatePlaces = 6

// epoch is the zero point of the time-base counter.
var epoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// decoder implements registry.HeaderDecoder for Baikal-7 files.
type decoder struct{}

func init() {
	registry.Register(types.FormatBaikal7, &decoder{})
}

// Decode decodes a Baikal-7 header.
func (d *decoder) Decode(data []byte, path string, _ registry.DecodeOptions) (types.Header, []types.Warning, error) {
	cr := binary.NewChainReader(binary.NewBytesReader(data, path))

	channels := binary.ReadChained[uint16](cr, offsetChannelCount, "channel count")
	frequency := binary.ReadChained[uint16](cr, offsetFrequency, "frequency")
	latitude := binary.ReadChained[float64](cr, offsetLatitude, "latitude")
	longitude := binary.ReadChained[float64](cr, offsetLongitude, "longitude")
	ticks := binary.ReadChained[uint64](cr, offsetTimeBase, "time base")

	if err := cr.Error(); err != nil {
		field, off := cr.Failed()
		return types.Header{}, nil, headerError(path, field, off, err)
	}

	if channels == 0 {
		return types.Header{}, nil, headerError(path, "channel count", offsetChannelCount, types.ErrInvalidChannelCount)
	}
	if frequency == 0 {
		return types.Header{}, nil, headerError(path, "frequency", offsetFrequency, types.ErrInvalidFrequency)
	}

	coord := types.Coordinate{
		Longitude: numeric.Round(longitude, coordinatePlaces),
		Latitude:  numeric.Round(latitude, coordinatePlaces),
	}
	if err := coord.Validate(); err != nil {
		return types.Header{}, nil, headerError(path, "coordinate", offsetLatitude, err)
	}

	return types.Header{
		ChannelCount: channels,
		Frequency:    uint32(frequency),
		StartTime:    StartTime(ticks),
		Coordinate:   coord,
		Format:       types.FormatBaikal7,
	}, nil, nil
}

// StartTime converts a time-base tick count to wall-clock time. Sub-second
// ticks are discarded.
func StartTime(ticks uint64) time.Time {
	return time.Unix(epoch.Unix()+int64(ticks/ticksPerSecond), 0).UTC()
}

func headerError(path, field string, off int64, err error) error {
	return &types.HeaderError{
		Path:   path,
		Format: types.FormatBaikal7,
		Field:  field,
		Offset: off,
		Err:    err,
	}
}
