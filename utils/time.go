package utils

import (
	"fmt"
	"time"
)

// FormatElapsed takes in time.Duration and formats in HH:MM:SS.mmm
func FormatElapsed(d time.Duration) string {
	totalMillis := d.Milliseconds()
	hours := totalMillis / (60 * 60 * 1000)
	minutes := (totalMillis / (60 * 1000)) % 60
	seconds := (totalMillis / 1000) % 60
	millis := totalMillis % 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}
