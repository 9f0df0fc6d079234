package types

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"record.00", FormatBaikal7},
		{"/data/105_2023-01-15_10-00-00_Baikal7_CME.00", FormatBaikal7},
		{"record.xx", FormatBaikal8},
		{"RECORD.XX", FormatBaikal8},
		{"record.bin", FormatSigma},
		{"dir.with.dots/record.BIN", FormatSigma},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat_Unsupported(t *testing.T) {
	for _, path := range []string{"record.wav", "record", "record.000", "record.x", ".00/record"} {
		t.Run(path, func(t *testing.T) {
			got, err := DetectFormat(path)
			require.Equal(t, FormatUnknown, got)
			require.ErrorIs(t, err, ErrUnsupportedExtension)

			var openErr *OpenError
			require.True(t, errors.As(err, &openErr))
			require.Equal(t, path, openErr.Path)
		})
	}
}

func TestFormat_RecordOffset(t *testing.T) {
	require.Equal(t, 2*time.Second, FormatSigma.RecordOffset())
	require.Zero(t, FormatBaikal7.RecordOffset())
	require.Zero(t, FormatBaikal8.RecordOffset())
	require.Zero(t, FormatUnknown.RecordOffset())
}

func TestFormat_String(t *testing.T) {
	require.Equal(t, "Baikal7", FormatBaikal7.String())
	require.Equal(t, "Baikal8", FormatBaikal8.String())
	require.Equal(t, "Sigma", FormatSigma.String())
	require.Equal(t, "Unknown", Format(42).String())
}

func TestFormat_Extensions(t *testing.T) {
	require.Equal(t, []string{".00"}, FormatBaikal7.Extensions())
	require.Equal(t, []string{".xx"}, FormatBaikal8.Extensions())
	require.Equal(t, []string{".bin"}, FormatSigma.Extensions())
	require.Nil(t, FormatUnknown.Extensions())
}
