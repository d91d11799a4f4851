package app

import (
	"testing"
	"time"
)

func TestToAbsolute(t *testing.T) {
	cases := []struct {
		name        string
		year        int
		month       time.Month
		day         int
		hour        int
		minute      int
		wantDisplay string
		wantUTC     time.Time
	}{
		{
			name: "winter uses standard offset",
			year: 2025, month: time.July, day: 10, hour: 18, minute: 0,
			wantDisplay: "2025-07-10 18:00:00",
			wantUTC:     time.Date(2025, time.July, 10, 8, 0, 0, 0, time.UTC),
		},
		{
			name: "summer uses daylight offset",
			year: 2025, month: time.December, day: 1, hour: 17, minute: 30,
			wantDisplay: "2025-12-01 17:30:00",
			wantUTC:     time.Date(2025, time.December, 1, 6, 30, 0, 0, time.UTC),
		},
		{
			name: "evening near year end crosses into previous UTC day",
			year: 2026, month: time.January, day: 1, hour: 9, minute: 0,
			wantDisplay: "2026-01-01 09:00:00",
			wantUTC:     time.Date(2025, time.December, 31, 22, 0, 0, 0, time.UTC),
		},
		{
			name: "single digit components zero padded",
			year: 2025, month: time.August, day: 3, hour: 7, minute: 5,
			wantDisplay: "2025-08-03 07:05:00",
			wantUTC:     time.Date(2025, time.August, 2, 21, 5, 0, 0, time.UTC),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			display, utc := ToAbsolute(tc.year, tc.month, tc.day, tc.hour, tc.minute)
			if display != tc.wantDisplay {
				t.Errorf("display = %q, want %q", display, tc.wantDisplay)
			}
			if !utc.Equal(tc.wantUTC) {
				t.Errorf("utc = %v, want %v", utc, tc.wantUTC)
			}
		})
	}
}

func TestToAbsoluteRoundTrip(t *testing.T) {
	// The display string must parse back to the exact civil components it
	// was built from, across both offsets and the transitions.
	dates := []struct {
		year  int
		month time.Month
		day   int
	}{
		{2025, time.February, 28},
		{2025, time.April, 6},
		{2025, time.July, 10},
		{2025, time.October, 4},
		{2025, time.October, 5},
		{2025, time.December, 31},
		{2026, time.January, 1},
	}
	for _, d := range dates {
		for _, hm := range [][2]int{{0, 0}, {9, 15}, {17, 0}, {20, 59}, {23, 45}} {
			display, _ := ToAbsolute(d.year, d.month, d.day, hm[0], hm[1])
			got, err := ParseLocalDisplay(display)
			if err != nil {
				t.Fatalf("ParseLocalDisplay(%q): %v", display, err)
			}
			if got.Year() != d.year || got.Month() != d.month || got.Day() != d.day ||
				got.Hour() != hm[0] || got.Minute() != hm[1] {
				t.Errorf("round trip of %q lost components: got %v", display, got)
			}
		}
	}
}

func TestParseLocalDisplayLegacyEncodings(t *testing.T) {
	cases := []string{
		"2025-07-10 18:00:00",
		"2025-07-10T18:00:00Z",
		"2025-07-10T18:00:00",
		"2025-07-10 18:00",
	}
	for _, stored := range cases {
		got, err := ParseLocalDisplay(stored)
		if err != nil {
			t.Errorf("ParseLocalDisplay(%q): %v", stored, err)
			continue
		}
		if got.Hour() != 18 || got.Day() != 10 {
			t.Errorf("ParseLocalDisplay(%q) = %v", stored, got)
		}
	}
}

func TestSplitForDisplay(t *testing.T) {
	date, clock := SplitForDisplay("2025-07-10 18:00:00")
	if date != "10/07/2025" || clock != "18:00" {
		t.Errorf("SplitForDisplay = (%q, %q)", date, clock)
	}

	date, clock = SplitForDisplay("not a datetime")
	if date != InvalidDateDisplay || clock != InvalidTimeDisplay {
		t.Errorf("SplitForDisplay on garbage = (%q, %q), want sentinels", date, clock)
	}

	date, clock = SplitForDisplay("")
	if date != InvalidDateDisplay || clock != InvalidTimeDisplay {
		t.Errorf("SplitForDisplay on empty = (%q, %q), want sentinels", date, clock)
	}
}

func TestFormatDisplayDate(t *testing.T) {
	if got := FormatDisplayDate(time.Date(2025, time.July, 10, 3, 0, 0, 0, time.UTC)); got != "10/07/2025" {
		t.Errorf("FormatDisplayDate = %q", got)
	}
	if got := FormatDisplayDate(time.Time{}); got != InvalidDateDisplay {
		t.Errorf("FormatDisplayDate(zero) = %q", got)
	}
}
