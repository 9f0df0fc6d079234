package types

import (
	"fmt"
	"math"
)

const secondsPerDay = 24 * 60 * 60

// FormatDuration renders whole seconds as "HH:MM:SS", prefixed with a
// "<n> days " count once the duration reaches a day.
//
// Example: 555 -> "00:09:15", 115851 -> "1 days 08:10:51".
func FormatDuration(seconds float64) string {
	total := int64(math.Floor(seconds))
	if total < 0 {
		total = 0
	}

	days := total / secondsPerDay
	rest := total % secondsPerDay
	hms := fmt.Sprintf("%02d:%02d:%02d", rest/3600, rest%3600/60, rest%60)

	if days == 0 {
		return hms
	}
	return fmt.Sprintf("%d days %s", days, hms)
}
