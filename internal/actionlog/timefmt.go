package actionlog

import (
	"fmt"
	"time"
)

// RelativeTime renders a timestamp the way the activity log displays it:
// minutes ago within the hour, hours ago within the day, weekday plus time
// within the week, and month/day plus time beyond that.
func RelativeTime(ts time.Time, now time.Time) string {
	d := now.Sub(ts)
	switch {
	case d < time.Hour:
		m := int(d.Minutes())
		if m < 0 {
			m = 0
		}
		return fmt.Sprintf("%dm ago", m)
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return ts.Format("Mon 15:04")
	default:
		return ts.Format("Jan 2 15:04")
	}
}

// RelativeTimeMillis is RelativeTime over an epoch-millis timestamp.
func RelativeTimeMillis(millis int64, now time.Time) string {
	if millis <= 0 {
		return ""
	}
	return RelativeTime(time.UnixMilli(millis).Local(), now)
}
