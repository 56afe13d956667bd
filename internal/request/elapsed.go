package request

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// FormatTimePassed renders now-since as whole days, remainder hours and
// remainder minutes ("2d 3h 5m"). Seconds are dropped. A since later than
// now renders as zero.
func FormatTimePassed(since, now time.Time) string {
	diff := now.Sub(since)
	if diff < 0 {
		diff = 0
	}
	days := diff / day
	hours := (diff % day) / time.Hour
	minutes := (diff % time.Hour) / time.Minute
	return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
}
