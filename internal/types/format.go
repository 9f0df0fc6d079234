package types

import (
	"path/filepath"
	"strings"
	"time"
)

// Format represents the detected recording format.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported format.
	FormatUnknown Format = iota
	// FormatBaikal7 represents Baikal-7 recordings (.00).
	FormatBaikal7
	// FormatBaikal8 represents Baikal-8 recordings (.xx).
	FormatBaikal8
	// FormatSigma represents Sigma recordings (.bin).
	FormatSigma
)

// sigmaRecordOffset compensates the Sigma registrator clock lag.
const sigmaRecordOffset = 2 * time.Second

func (f Format) String() string {
	switch f {
	case FormatBaikal7:
		return "Baikal7"
	case FormatBaikal8:
		return "Baikal8"
	case FormatSigma:
		return "Sigma"
	default:
		return "Unknown"
	}
}

// Extensions returns the file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatBaikal7:
		return []string{".00"}
	case FormatBaikal8:
		return []string{".xx"}
	case FormatSigma:
		return []string{".bin"}
	case FormatUnknown:
		return nil
	default:
		return nil
	}
}

// RecordOffset returns the shift applied to the header interval to obtain
// the record interval.
func (f Format) RecordOffset() time.Duration {
	if f == FormatSigma {
		return sigmaRecordOffset
	}
	return 0
}

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatBaikal7, FormatBaikal8, FormatSigma}
}

// DetectFormat determines the recording format from the file extension.
//
// Recordings carry no magic bytes, so the extension is the only signal.
// Matching is case-insensitive.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range Formats() {
		for _, e := range f.Extensions() {
			if ext == e {
				return f, nil
			}
		}
	}
	return FormatUnknown, &OpenError{
		Path: path,
		Err:  ErrUnsupportedExtension,
	}
}
