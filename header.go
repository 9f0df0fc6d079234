package seisfile

import (
	"time"

	"github.com/simonhull/seisfile/internal/types"
)

// Header is an alias to types.Header.
// Re-exporting from internal/types to maintain public API.
type Header = types.Header

// Coordinate is an alias to types.Coordinate.
type Coordinate = types.Coordinate

// TimeInterval is an alias to types.TimeInterval.
type TimeInterval = types.TimeInterval

// NameInfo is an alias to types.NameInfo.
type NameInfo = types.NameInfo

// RecordFileInfo is an alias to types.RecordFileInfo.
type RecordFileInfo = types.RecordFileInfo

// NewTimeInterval returns an interval, rejecting start after stop.
func NewTimeInterval(start, stop time.Time) (TimeInterval, error) {
	return types.NewTimeInterval(start, stop)
}

// FormatDuration renders seconds as "HH:MM:SS" or "<n> days HH:MM:SS".
func FormatDuration(seconds float64) string {
	return types.FormatDuration(seconds)
}
