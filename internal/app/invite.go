package app

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
)

const (
	inviteProdID    = "-//Hellenic Cosmetics//EN"
	inviteTZID      = "Australia/Melbourne"
	inviteUIDDomain = "hellenic-cosmetics.com"
	icsLocalLayout  = "20060102T150405"
)

// BuildInvite renders the VEVENT attached to booking emails. The start
// time comes from the already-reconciled local display string; no offset
// resolution happens here.
func BuildInvite(id int64, localDisplay, summary, description string, now time.Time) (string, error) {
	start, err := ParseLocalDisplay(localDisplay)
	if err != nil {
		return "", err
	}

	cal := ical.NewCalendar()
	cal.SetProductId(inviteProdID)
	cal.SetVersion("2.0")

	ev := cal.AddEvent(fmt.Sprintf("%d@%s", id, inviteUIDDomain))
	ev.SetDtStampTime(now.UTC())
	ev.SetProperty(ical.ComponentPropertyDtStart, start.Format(icsLocalLayout),
		&ical.KeyValues{Key: "TZID", Value: []string{inviteTZID}})
	ev.SetSummary(summary)
	ev.SetDescription(description)

	return cal.Serialize(), nil
}
