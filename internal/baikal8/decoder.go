// Package baikal8 decodes Baikal-8 (.xx) recording headers.
package baikal8

import (
	"fmt"
	"math"
	"time"

	"github.com/simonhull/seisfile/internal/binary"
	"github.com/simonhull/seisfile/internal/numeric"
	"github.com/simonhull/seisfile/internal/registry"
	"github.com/simonhull/seisfile/internal/types"
)

// Header field offsets.
const (
	offsetChannelCount = 0
	offsetDay          = 6
	offsetMonth        = 8
	offsetYear         = 10
	offsetSamplePeriod = 48
	offsetSeconds      = 56
	offsetLatitude     = 72
	offsetLongitude    = 80
)

// coordinatePlaces is the precision coordinates are rounded to.
const coordinatePlaces = 6

// dayOffset is the time of day the seconds field counts from.
const dayOffset = time.Second

// maxSeconds keeps the seconds field within time.Duration range.
const maxSeconds = float64(math.MaxInt64) / float64(time.Second)

// decoder implements registry.HeaderDecoder for Baikal-8 files.
type decoder struct{}

func init() {
	registry.Register(types.FormatBaikal8, &decoder{})
}

// Decode decodes a Baikal-8 header.
func (d *decoder) Decode(data []byte, path string, _ registry.DecodeOptions) (types.Header, []types.Warning, error) {
	cr := binary.NewChainReader(binary.NewBytesReader(data, path))

	channels := binary.ReadChained[uint16](cr, offsetChannelCount, "channel count")
	day := binary.ReadChained[uint16](cr, offsetDay, "day")
	month := binary.ReadChained[uint16](cr, offsetMonth, "month")
	year := binary.ReadChained[uint16](cr, offsetYear, "year")
	period := binary.ReadChained[float64](cr, offsetSamplePeriod, "sample period")
	seconds := binary.ReadChained[float64](cr, offsetSeconds, "seconds")
	latitude := binary.ReadChained[float64](cr, offsetLatitude, "latitude")
	longitude := binary.ReadChained[float64](cr, offsetLongitude, "longitude")

	if err := cr.Error(); err != nil {
		field, off := cr.Failed()
		return types.Header{}, nil, headerError(path, field, off, err)
	}

	if channels == 0 {
		return types.Header{}, nil, headerError(path, "channel count", offsetChannelCount, types.ErrInvalidChannelCount)
	}

	frequency, err := Frequency(period)
	if err != nil {
		return types.Header{}, nil, headerError(path, "sample period", offsetSamplePeriod, err)
	}

	start, err := StartTime(int(year), int(month), int(day), seconds)
	if err != nil {
		return types.Header{}, nil, headerError(path, "date", offsetDay, err)
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
		Frequency:    frequency,
		StartTime:    start,
		Coordinate:   coord,
		Format:       types.FormatBaikal8,
	}, nil, nil
}

// Frequency converts a sample period in seconds to a whole frequency in Hz.
func Frequency(period float64) (uint32, error) {
	if math.IsNaN(period) || math.IsInf(period, 0) || period <= 0 {
		return 0, fmt.Errorf("%w: sample period %v", types.ErrInvalidFrequency, period)
	}
	f := math.RoundToEven(1 / period)
	if f < 1 || f > math.MaxUint32 {
		return 0, fmt.Errorf("%w: sample period %v gives %v Hz", types.ErrInvalidFrequency, period, f)
	}
	return uint32(f), nil
}

// StartTime builds the recording start from the header date and the seconds
// counted from 00:00:01 of that day.
func StartTime(year, month, day int, seconds float64) (time.Time, error) {
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return time.Time{}, fmt.Errorf("%w: date %04d-%02d-%02d", types.ErrInvalidTimestamp, year, month, day)
	}
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 || seconds >= maxSeconds {
		return time.Time{}, fmt.Errorf("%w: seconds %v", types.ErrInvalidTimestamp, seconds)
	}
	frac := time.Duration(math.Round(seconds * float64(time.Second)))
	return date.Add(dayOffset).Add(frac), nil
}

func headerError(path, field string, off int64, err error) error {
	return &types.HeaderError{
		Path:   path,
		Format: types.FormatBaikal8,
		Field:  field,
		Offset: off,
		Err:    err,
	}
}
