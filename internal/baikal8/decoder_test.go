package baikal8

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/simonhull/seisfile/internal/registry"
	"github.com/simonhull/seisfile/internal/types"
)

type headerFields struct {
	channels         uint16
	day, month, year uint16
	period, seconds  float64
	lat, lon         float64
}

// buildHeader creates a minimal Baikal-8 header region.
func buildHeader(f headerFields) []byte {
	b := make([]byte, types.HeaderRegionSize)
	binary.LittleEndian.PutUint16(b[offsetChannelCount:], f.channels)
	binary.LittleEndian.PutUint16(b[offsetDay:], f.day)
	binary.LittleEndian.PutUint16(b[offsetMonth:], f.month)
	binary.LittleEndian.PutUint16(b[offsetYear:], f.year)
	binary.LittleEndian.PutUint64(b[offsetSamplePeriod:], math.Float64bits(f.period))
	binary.LittleEndian.PutUint64(b[offsetSeconds:], math.Float64bits(f.seconds))
	binary.LittleEndian.PutUint64(b[offsetLatitude:], math.Float64bits(f.lat))
	binary.LittleEndian.PutUint64(b[offsetLongitude:], math.Float64bits(f.lon))
	return b
}

func validFields() headerFields {
	return headerFields{
		channels: 3,
		day:      15, month: 1, year: 2023,
		period:  0.001,
		seconds: 36000.25,
		lat:     51.8765432, lon: 104.3051239,
	}
}

func TestDecode(t *testing.T) {
	hdr, warnings, err := (&decoder{}).Decode(buildHeader(validFields()), "test.xx", registry.DecodeOptions{})
	require.NoError(t, err)
	require.Empty(t, warnings)

	require.Equal(t, types.FormatBaikal8, hdr.Format)
	require.Equal(t, uint16(3), hdr.ChannelCount)
	require.Equal(t, uint32(1000), hdr.Frequency)
	require.Equal(t, 51.876543, hdr.Coordinate.Latitude)
	require.Equal(t, 104.305124, hdr.Coordinate.Longitude)
	require.Equal(t, time.Date(2023, 1, 15, 10, 0, 1, 250_000_000, time.UTC), hdr.StartTime)
}

func TestFrequency(t *testing.T) {
	tests := []struct {
		period float64
		want   uint32
	}{
		{0.001, 1000},
		{0.004, 250},
		{0.01, 100},
		{1.0 / 3, 3},
		{0.0019999, 500},
		{1, 1},
	}

	for _, tt := range tests {
		got, err := Frequency(tt.period)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "period=%v", tt.period)
	}

	for _, bad := range []float64{0, -0.001, math.NaN(), math.Inf(1), 10} {
		_, err := Frequency(bad)
		require.ErrorIs(t, err, types.ErrInvalidFrequency, "period=%v", bad)
	}
}

func TestStartTime(t *testing.T) {
	got, err := StartTime(2020, 2, 29, 0)
	require.NoError(t, err)
	require.Equal(t, time.Date(2020, 2, 29, 0, 0, 1, 0, time.UTC), got)

	for _, tc := range []struct{ y, m, d int }{{2023, 2, 29}, {2023, 13, 1}, {2023, 0, 1}, {2023, 1, 0}} {
		_, err := StartTime(tc.y, tc.m, tc.d, 0)
		require.ErrorIs(t, err, types.ErrInvalidTimestamp, "%v", tc)
	}

	_, err = StartTime(2023, 1, 1, -1)
	require.ErrorIs(t, err, types.ErrInvalidTimestamp)
	_, err = StartTime(2023, 1, 1, math.NaN())
	require.ErrorIs(t, err, types.ErrInvalidTimestamp)
}

func TestDecode_Errors(t *testing.T) {
	zeroChannels := validFields()
	zeroChannels.channels = 0

	zeroPeriod := validFields()
	zeroPeriod.period = 0

	badDate := validFields()
	badDate.month = 14

	badCoord := validFields()
	badCoord.lon = 200

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"zero channels", buildHeader(zeroChannels), types.ErrInvalidChannelCount},
		{"zero period", buildHeader(zeroPeriod), types.ErrInvalidFrequency},
		{"invalid date", buildHeader(badDate), types.ErrInvalidTimestamp},
		{"longitude out of range", buildHeader(badCoord), types.ErrInvalidCoordinate},
		{"truncated", buildHeader(validFields())[:60], types.ErrTruncated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := (&decoder{}).Decode(tt.data, "test.xx", registry.DecodeOptions{Lenient: true})
			require.ErrorIs(t, err, tt.want)
		})
	}
}
