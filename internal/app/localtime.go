package app

import (
	"fmt"
	"time"
)

// localDisplayLayout is the canonical layout for the stored local string.
// Both the write path and the read path go through it; there is no other
// date formatting in the persistence path.
const localDisplayLayout = "2006-01-02 15:04:05"

// Sentinels reported when a stored local string cannot be parsed. Records
// written before the current encoding may still be in the table, so the
// read path degrades per row instead of failing the listing.
const (
	InvalidDateDisplay = "Invalid Date"
	InvalidTimeDisplay = "Invalid Time"
)

// ToAbsolute reconciles a civil wall-clock input into its stored pair:
// the local display string and the UTC instant. The civil components are
// composed as plain numbers, the seasonal offset is resolved once from
// the civil date and used for both values so they cannot drift apart.
func ToAbsolute(year int, month time.Month, day, hour, minute int) (string, time.Time) {
	wall := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	offset := ResolveOffsetHours(year, month, day)
	utc := wall.Add(-time.Duration(offset) * time.Hour)
	return wall.Format(localDisplayLayout), utc
}

// Layouts accepted on the read path. The first is current; the rest cover
// encodings older records were written with.
var localParseLayouts = []string{
	localDisplayLayout,
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// ParseLocalDisplay parses a stored local string into its wall-clock
// instant, tolerating legacy encodings.
func ParseLocalDisplay(stored string) (time.Time, error) {
	for _, layout := range localParseLayouts {
		if t, err := time.Parse(layout, stored); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized local datetime %q", stored)
}

// SplitForDisplay renders a stored local string as the date and time
// strings shown on the admin dashboard. Unparseable values yield the
// sentinels rather than an error.
func SplitForDisplay(stored string) (date string, clock string) {
	t, err := ParseLocalDisplay(stored)
	if err != nil {
		return InvalidDateDisplay, InvalidTimeDisplay
	}
	return t.Format("02/01/2006"), t.Format("15:04")
}

// FormatDisplayDate renders a timestamp with the same date format the
// dashboard uses for appointment dates; used for created_at.
func FormatDisplayDate(t time.Time) string {
	if t.IsZero() {
		return InvalidDateDisplay
	}
	return t.Format("02/01/2006")
}
