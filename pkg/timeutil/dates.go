// Package timeutil holds the calendar helpers shared by habits and tasks.
package timeutil

import "time"

// LayoutISO is the date-only layout used for task deadlines and date keys.
const LayoutISO = "2006-01-02"

// DateKey returns t as YYYY-MM-DD in t's own location.
func DateKey(t time.Time) string {
	return t.Format(LayoutISO)
}

// ParseDateKey parses a YYYY-MM-DD key in the local time zone.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation(LayoutISO, key, time.Local)
}

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// LastNDays returns the n calendar days ending with now, oldest first.
func LastNDays(now time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	today := StartOfDay(now)
	days := make([]time.Time, n)
	for i := 0; i < n; i++ {
		days[i] = today.AddDate(0, 0, i-(n-1))
	}
	return days
}

// ShortWeekday renders "Mon", "Tue", ...
func ShortWeekday(t time.Time) string {
	return t.Weekday().String()[:3]
}
