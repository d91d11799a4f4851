package app

import "time"

// Melbourne offsets from UTC, in hours.
const (
	standardOffsetHours = 10 // AEST
	daylightOffsetHours = 11 // AEDT
)

// Daylight saving runs from the first Sunday of October to the first
// Sunday of April.
const (
	daylightStartMonth = time.October
	daylightEndMonth   = time.April
)

// ResolveOffsetHours returns the UTC offset in effect for a Melbourne
// civil date. Comparisons are at day granularity so the result is
// unambiguous on the transition dates themselves. The window wraps the
// year end, so a date is inside it when it falls on/after this year's
// October boundary or strictly before this year's April boundary.
func ResolveOffsetHours(year int, month time.Month, day int) int {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	start := firstSunday(year, daylightStartMonth)
	end := firstSunday(year, daylightEndMonth)
	if !d.Before(start) || d.Before(end) {
		return daylightOffsetHours
	}
	return standardOffsetHours
}

func firstSunday(year int, month time.Month) time.Time {
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}
