package viz

import (
	"fmt"
	"math"
)

// FormatDuration renders hours as "2h 30m", "45m" or "3h".
func FormatDuration(hours float64) string {
	total := int(math.Floor(hours*60 + 1e-9))
	if total < 0 {
		total = 0
	}
	h, m := total/60, total%60

	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// SleepWindow is the time left in a day after sleep becomes possible.
func SleepWindow(onsetH float64, ok bool) string {
	if !ok || 24-onsetH <= 0 {
		return "No Sleep"
	}
	return FormatDuration(24 - onsetH)
}

// FormatClock renders hours after midnight as a 12-hour clock time. Values
// past 24 wrap to the next day.
func FormatClock(hours float64) string {
	total := int(math.Round(hours*60)) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	h, m := total/60, total%60

	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, m, suffix)
}

func ImpactMessage(hoursGained float64) string {
	switch {
	case hoursGained >= 3:
		return "Excellent improvement!"
	case hoursGained >= 2:
		return "Great improvement!"
	case hoursGained >= 1:
		return "Good improvement"
	default:
		return "Sure, it's not much, but it's something!"
	}
}
