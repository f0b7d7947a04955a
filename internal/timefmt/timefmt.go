package timefmt

import (
	"fmt"
	"time"
)

// Age renders how long ago a fixture file was fetched. Coarse on purpose:
// cache staleness is judged in days, not seconds.
func Age(t, now time.Time) string {
	if now.IsZero() {
		now = time.Now()
	}
	if t.IsZero() {
		return "never"
	}

	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 14*24*time.Hour:
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	case t.Year() == now.Year():
		return t.Format("Jan 2")
	default:
		return t.Format("Jan 2 2006")
	}
}
