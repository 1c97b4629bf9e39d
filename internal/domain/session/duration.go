package session

import (
	"fmt"
	"time"
)

// FormatDuration renders d as HH:MM:SS.mmm, truncating each unit.
func FormatDuration(d time.Duration) string {
	ms := d.Milliseconds()
	hours := ms / 3_600_000
	minutes := ms % 3_600_000 / 60_000
	seconds := ms % 60_000 / 1000
	millis := ms % 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}
