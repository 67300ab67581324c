package queue

import (
	"fmt"
	"time"
)

// FormatDuration renders an elapsed duration as a compact human string
// using the largest applicable unit plus at most one secondary unit:
// "3d 4h", "2h 15m", "45m", "12s". Zero secondary components are
// omitted. Negative input is a caller contract violation and is
// rendered as zero.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	switch {
	case d >= 24*time.Hour:
		days := int(d / (24 * time.Hour))
		hours := int(d % (24 * time.Hour) / time.Hour)
		if hours > 0 {
			return fmt.Sprintf("%dd %dh", days, hours)
		}
		return fmt.Sprintf("%dd", days)
	case d >= time.Hour:
		hours := int(d / time.Hour)
		mins := int(d % time.Hour / time.Minute)
		if mins > 0 {
			return fmt.Sprintf("%dh %dm", hours, mins)
		}
		return fmt.Sprintf("%dh", hours)
	case d >= time.Minute:
		return fmt.Sprintf("%dm", int(d/time.Minute))
	default:
		return fmt.Sprintf("%ds", int(d/time.Second))
	}
}
