package ui

import (
	"fmt"
	"time"
)

// FormatRelativeTime formats t relative to now, e.g. "just now", "2m ago",
// "3h ago", "5d ago", "2mo ago" or "1y ago".
func FormatRelativeTime(t time.Time) string {
	return formatSince(time.Since(t))
}

func formatSince(diff time.Duration) string {
	const day = 24 * time.Hour
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < day:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 30*day:
		return fmt.Sprintf("%dd ago", int(diff/day))
	case diff < 365*day:
		return fmt.Sprintf("%dmo ago", int(diff/(30*day)))
	default:
		return fmt.Sprintf("%dy ago", int(diff/(365*day)))
	}
}
