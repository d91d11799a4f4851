package app

import (
	"testing"
	"time"
)

func TestFirstSunday(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.October, 6},
		{2025, time.April, 6},
		{2025, time.October, 5},
		{2026, time.April, 5},
	}
	for _, tc := range cases {
		got := firstSunday(tc.year, tc.month)
		if got.Day() != tc.want {
			t.Errorf("firstSunday(%d, %v) = day %d, want %d", tc.year, tc.month, got.Day(), tc.want)
		}
		if got.Weekday() != time.Sunday {
			t.Errorf("firstSunday(%d, %v) fell on %v", tc.year, tc.month, got.Weekday())
		}
	}
}

func TestResolveOffsetHours(t *testing.T) {
	cases := []struct {
		name  string
		year  int
		month time.Month
		day   int
		want  int
	}{
		{"mid winter", 2025, time.July, 10, standardOffsetHours},
		{"late september", 2025, time.September, 30, standardOffsetHours},
		{"day before daylight starts", 2025, time.October, 4, standardOffsetHours},
		{"daylight transition day", 2025, time.October, 5, daylightOffsetHours},
		{"mid november", 2025, time.November, 15, daylightOffsetHours},
		{"new years eve", 2025, time.December, 31, daylightOffsetHours},
		{"new years day wraps window", 2026, time.January, 1, daylightOffsetHours},
		{"mid summer", 2026, time.February, 14, daylightOffsetHours},
		{"day before daylight ends", 2026, time.April, 4, daylightOffsetHours},
		{"standard transition day", 2026, time.April, 5, standardOffsetHours},
		{"mid may", 2026, time.May, 20, standardOffsetHours},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveOffsetHours(tc.year, tc.month, tc.day)
			if got != tc.want {
				t.Errorf("ResolveOffsetHours(%d, %v, %d) = %d, want %d",
					tc.year, tc.month, tc.day, got, tc.want)
			}
		})
	}
}
