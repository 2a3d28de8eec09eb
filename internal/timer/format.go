package timer

import (
	"fmt"
	"math"
)

// Format renders seconds as HH:MM:SS.ss. Negative values display as zero and
// values past MaxSeconds display as MaxSeconds.
// The value is truncated to hundredths first so whole units never round up
// (59.999 shows as 00:00:59.99, not 00:00:60.00 or 00:01:00.00).
func Format(seconds float64) string {
	if !(seconds > 0) {
		seconds = 0
	}
	seconds = math.Min(seconds, MaxSeconds)
	cs := int64(math.Floor(seconds*100 + 1e-6))

	hours := cs / 360000
	minutes := cs / 6000 % 60
	secs := cs / 100 % 60
	frac := cs % 100
	return fmt.Sprintf("%02d:%02d:%02d.%02d", hours, minutes, secs, frac)
}
