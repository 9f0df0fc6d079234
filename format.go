package seisfile

import (
	"github.com/simonhull/seisfile/internal/types"
)

// Format is an alias to types.Format.
// Re-exporting from internal/types to maintain public API.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown = types.FormatUnknown
	FormatBaikal7 = types.FormatBaikal7
	FormatBaikal8 = types.FormatBaikal8
	FormatSigma   = types.FormatSigma
)

// DetectFormat is a wrapper around types.DetectFormat.
// The format is chosen by extension only: .00, .xx or .bin.
func DetectFormat(path string) (Format, error) {
	return types.DetectFormat(path)
}

// Supported reports whether path has a recognised recording extension.
func Supported(path string) bool {
	f, err := types.DetectFormat(path)
	return err == nil && f != FormatUnknown
}
