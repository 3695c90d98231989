package metrics

import "time"

// monthKeyLayout is the calendar-month key format, e.g. "2024-06".
const monthKeyLayout = "2006-01"

// MonthKey formats t as a YYYY-MM key. Month boundaries are fixed to
// UTC so every sub-computation of a snapshot agrees on the same month
// regardless of server locale.
func MonthKey(t time.Time) string {
	return t.UTC().Format(monthKeyLayout)
}

// MonthBounds returns the half-open interval [start, next) covering t's
// UTC calendar month. A date d belongs to the month iff
// start <= d < next, which is equivalent to MonthKey(d) == MonthKey(t).
func MonthBounds(t time.Time) (start, next time.Time) {
	u := t.UTC()
	start = time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
