package app

import "time"

const (
	// Bookings must be made strictly more than this far in advance.
	minNoticePeriod = 48 * time.Hour

	// Appointments start between 5:00 PM and 8:59 PM.
	openingHour = 17
	closingHour = 21
)

// NowInMelbourne shifts an absolute instant into Melbourne wall-clock
// terms using the offset in effect on the candidate's civil date. Using
// the candidate's offset, not today's, keeps the comparison in the same
// logical timezone as the value being validated.
func NowInMelbourne(now time.Time, year int, month time.Month, day int) time.Time {
	offset := ResolveOffsetHours(year, month, day)
	return now.UTC().Add(time.Duration(offset) * time.Hour)
}

// ValidateBooking applies the notice-period and business-hours rules to a
// candidate wall-clock instant. candidateLocal and nowLocal must be in
// the same wall-clock frame; hour is the requested civil hour. Exactly
// 48 hours of notice is not enough. When both rules fail, the notice rule
// is reported.
func ValidateBooking(candidateLocal, nowLocal time.Time, hour int) error {
	if candidateLocal.Sub(nowLocal) <= minNoticePeriod {
		return ErrTooSoon
	}
	if hour < openingHour || hour >= closingHour {
		return ErrOutsideHours
	}
	return nil
}
