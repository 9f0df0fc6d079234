// Package parsing extracts station metadata from recording file names.
package parsing

import (
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/simonhull/seisfile/internal/types"
)

// namePattern matches "<station>_<date>_<time>_<registrator>_<sensor>.<ext>".
var namePattern = regexp.MustCompile(`^(\d+)_([^_]+)_([^_]+)_([^_]+)_([^_]+)\.[^.]+$`)

// ParseName extracts NameInfo from the base name of path.
//
// Returns nil when the name does not follow the station convention, e.g.
// "record.00" or "K05_2023-01-15_10-00-00_Baikal8_CME.xx".
//
// Example: "105_2023-01-15_10-00-00_Baikal8_CME4311.xx" ->
// {StationNumber: 105, Registrator: "Baikal8", Sensor: "CME4311"}
func ParseName(path string) *types.NameInfo {
	if path == "" {
		return nil
	}

	m := namePattern.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return nil
	}

	station, err := strconv.ParseUint(m[1], 10, 32)
	if err != nil {
		return nil
	}

	return &types.NameInfo{
		StationNumber: uint32(station),
		Registrator:   m[4],
		Sensor:        m[5],
	}
}
