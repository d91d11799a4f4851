package app

import (
	"strings"
	"testing"
	"time"
)

func TestBuildInvite(t *testing.T) {
	now := time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)
	invite, err := BuildInvite(42, "2025-07-10 18:00:00",
		"Facial", "Appointment Enquiry at Hellenic Cosmetics", now)
	if err != nil {
		t.Fatalf("BuildInvite: %v", err)
	}

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"UID:42@hellenic-cosmetics.com",
		"DTSTART;TZID=Australia/Melbourne:20250710T180000",
		"SUMMARY:Facial",
		"DESCRIPTION:Appointment Enquiry at Hellenic Cosmetics",
		"END:VEVENT",
	} {
		if !strings.Contains(invite, want) {
			t.Errorf("invite missing %q:\n%s", want, invite)
		}
	}
}

func TestBuildInviteRejectsUnparseableLocal(t *testing.T) {
	if _, err := BuildInvite(1, "garbage", "Facial", "", time.Now()); err == nil {
		t.Error("expected error for unparseable local string")
	}
}
