// Package signal extracts single-channel sample streams from interleaved
// recordings and resamples them by block summation.
package signal

import (
	"fmt"
	"strings"

	"github.com/simonhull/seisfile/internal/types"
)

// ComponentOrder is the column order of the record components within a
// sensor bank.
const ComponentOrder = "ZXY"

// bankWidth is the number of channels of one sensor.
const bankWidth = 3

// Column returns the interleaved channel index of a component.
//
// Three-channel files hold one sensor. Wider files carry a co-located
// sensor in channels 0-2 and the record components start at channel 3.
func Column(component byte, channels uint16) (int, error) {
	idx := strings.IndexByte(ComponentOrder, component)
	if idx < 0 {
		return 0, fmt.Errorf("%w: %q not in %s", types.ErrUnknownComponent, component, ComponentOrder)
	}

	column := idx
	if channels != bankWidth {
		column += bankWidth
	}
	if column >= int(channels) {
		return 0, fmt.Errorf("%w: column %d with %d channels", types.ErrComponentOutOfRange, column, channels)
	}
	return column, nil
}
