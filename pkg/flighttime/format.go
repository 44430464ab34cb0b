package flighttime

import "fmt"

// FormatMinutes renders a duration in minutes as "HH:MM". Totals may exceed
// a day, so hours are not capped.
func FormatMinutes(minutes int) string {
	if minutes <= 0 {
		return "00:00"
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatHours renders a duration in minutes as decimal hours with one
// fractional digit, the convention used in printed logbooks.
func FormatHours(minutes int) string {
	if minutes <= 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", float64(minutes)/60)
}
