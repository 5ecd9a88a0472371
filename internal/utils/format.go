package utils

import (
	"fmt"
	"time"
)

// Age returns how long before now t happened, in the largest whole unit:
// "45s ago", "3h ago", "2w ago". Zero times read "N/A"; future times "0s ago".
func Age(t, now time.Time) string {
	if t.IsZero() {
		return "N/A"
	}

	const (
		day   = 24 * time.Hour
		week  = 7 * day
		month = 30 * day
		year  = 365 * day
	)

	since := now.Sub(t)
	if since < 0 {
		return "0s ago"
	}

	switch {
	case since < time.Minute:
		return fmt.Sprintf("%ds ago", int(since/time.Second))
	case since < time.Hour:
		return fmt.Sprintf("%dm ago", int(since/time.Minute))
	case since < day:
		return fmt.Sprintf("%dh ago", int(since/time.Hour))
	case since < week:
		return fmt.Sprintf("%dd ago", int(since/day))
	case since < month:
		return fmt.Sprintf("%dw ago", int(since/week))
	case since < year:
		return fmt.Sprintf("%dmo ago", int(since/month))
	}
	return fmt.Sprintf("%dy ago", int(since/year))
}

// OrDash returns s, or "-" when s is empty.
func OrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
