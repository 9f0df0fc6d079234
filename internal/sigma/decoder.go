// Package sigma decodes Sigma (.bin) recording headers.
//
// Sigma headers store the position as NMEA-style ASCII ("6644.66N",
// "07919.53E") and the start date and time as decimal-rendered integers
// (YYMMDD, HHMMSS).
package sigma

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/simonhull/seisfile/internal/binary"
	"github.com/simonhull/seisfile/internal/numeric"
	"github.com/simonhull/seisfile/internal/registry"
	"github.com/simonhull/seisfile/internal/types"
)

// Header field offsets and widths.
const (
	offsetChannelCount = 12
	offsetFrequency    = 24
	offsetLatitude     = 40
	offsetLongitude    = 48
	offsetDate         = 60
	offsetTime         = 64

	latitudeWidth  = 8
	longitudeWidth = 9
)

const (
	coordinatePlaces = 2
	centuryBase      = 2000
	digitsWidth      = 6
)

// Placeholder values used by lenient decoding.
var placeholderStart = time.Date(centuryBase, time.January, 1, 0, 0, 0, 0, time.UTC)

// decoder implements registry.HeaderDecoder for Sigma files.
type decoder struct{}

func init() {
	registry.Register(types.FormatSigma, &decoder{})
}

// Decode decodes a Sigma header.
func (d *decoder) Decode(data []byte, path string, opts registry.DecodeOptions) (types.Header, []types.Warning, error) {
	cr := binary.NewChainReader(binary.NewBytesReader(data, path))

	channels := binary.ReadChained[uint16](cr, offsetChannelCount, "channel count")
	frequency := binary.ReadChained[uint16](cr, offsetFrequency, "frequency")
	latText := cr.String(offsetLatitude, latitudeWidth, "latitude")
	lonText := cr.String(offsetLongitude, longitudeWidth, "longitude")
	dateDigits := binary.ReadChained[uint32](cr, offsetDate, "date")
	timeDigits := binary.ReadChained[uint32](cr, offsetTime, "time")

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

	var warnings []types.Warning

	start, err := StartTime(dateDigits, timeDigits)
	if err != nil {
		if !opts.Lenient {
			return types.Header{}, nil, headerError(path, "date", offsetDate, err)
		}
		start = placeholderStart
		warnings = append(warnings, types.Warning{
			Stage:   "header",
			Message: fmt.Sprintf("start time replaced by %s: %v", placeholderStart.Format(time.RFC3339), err),
			Offset:  offsetDate,
		})
	}

	coord, off, err := decodeCoordinate(latText, lonText)
	if err != nil {
		if !opts.Lenient {
			return types.Header{}, nil, headerError(path, "coordinate", off, err)
		}
		coord = types.Coordinate{}
		warnings = append(warnings, types.Warning{
			Stage:   "header",
			Message: fmt.Sprintf("coordinate replaced by 0, 0: %v", err),
			Offset:  off,
		})
	}

	return types.Header{
		ChannelCount: channels,
		Frequency:    uint32(frequency),
		StartTime:    start,
		Coordinate:   coord,
		Format:       types.FormatSigma,
	}, warnings, nil
}

func decodeCoordinate(latText, lonText string) (types.Coordinate, int64, error) {
	lat, err := ParseCoordinate(latText)
	if err != nil {
		return types.Coordinate{}, offsetLatitude, err
	}
	lon, err := ParseCoordinate(lonText)
	if err != nil {
		return types.Coordinate{}, offsetLongitude, err
	}

	if err := (types.Coordinate{Latitude: lat}).Validate(); err != nil {
		return types.Coordinate{}, offsetLatitude, err
	}
	if err := (types.Coordinate{Longitude: lon}).Validate(); err != nil {
		return types.Coordinate{}, offsetLongitude, err
	}
	return types.Coordinate{Longitude: lon, Latitude: lat}, 0, nil
}

// ParseCoordinate decodes a "DDMM.MM" or "DDDMM.MM" value with an optional
// trailing hemisphere letter, which is ignored. The result is degrees plus
// minutes/60, rounded to two decimal places.
func ParseCoordinate(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if n := len(s); n > 0 && strings.ContainsRune("NSEWnsew", rune(s[n-1])) {
		s = s[:n-1]
	}

	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		dot = len(s)
	}
	// At least one degree digit and two minute digits.
	if dot < 3 {
		return 0, fmt.Errorf("%w: malformed value %q", types.ErrInvalidCoordinate, text)
	}

	degrees, err := strconv.ParseUint(s[:dot-2], 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: degrees in %q: %v", types.ErrInvalidCoordinate, text, err)
	}
	minutes, err := strconv.ParseFloat(s[dot-2:], 64)
	if err != nil || minutes < 0 || minutes >= 60 {
		return 0, fmt.Errorf("%w: minutes in %q", types.ErrInvalidCoordinate, text)
	}

	return numeric.Round(float64(degrees)+minutes/60, coordinatePlaces), nil
}

// StartTime decodes the YYMMDD date and HHMMSS time integers. Both are
// zero-padded on the left to six digits.
func StartTime(dateDigits, timeDigits uint32) (time.Time, error) {
	ds := fmt.Sprintf("%0*d", digitsWidth, dateDigits)
	ts := fmt.Sprintf("%0*d", digitsWidth, timeDigits)
	if len(ds) != digitsWidth || len(ts) != digitsWidth {
		return time.Time{}, fmt.Errorf("%w: date %d time %d", types.ErrInvalidTimestamp, dateDigits, timeDigits)
	}

	year := centuryBase + atoi(ds[0:2])
	month := atoi(ds[2:4])
	day := atoi(ds[4:6])
	hour := atoi(ts[0:2])
	minute := atoi(ts[2:4])
	second := atoi(ts[4:6])

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != second {
		return time.Time{}, fmt.Errorf("%w: %s %s", types.ErrInvalidTimestamp, ds, ts)
	}
	return t, nil
}

// atoi parses two characters of the %06d rendering in StartTime. They are
// always ASCII digits, so Atoi cannot fail and its error is dropped.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func headerError(path, field string, off int64, err error) error {
	return &types.HeaderError{
		Path:   path,
		Format: types.FormatSigma,
		Field:  field,
		Offset: off,
		Err:    err,
	}
}
