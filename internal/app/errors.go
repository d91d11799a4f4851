package app

import "errors"

// PolicyError is a booking rejected by a business rule. The reason is
// shown to the customer verbatim.
type PolicyError struct {
	Reason string
}

func (e *PolicyError) Error() string { return e.Reason }

var (
	ErrTooSoon = &PolicyError{
		Reason: "Bookings require at least 48 hours notice.",
	}
	ErrOutsideHours = &PolicyError{
		Reason: "Appointments are available between 5:00 PM and 9:00 PM.",
	}

	// ErrDuplicateBooking maps the unique constraint on
	// (email, appointment_datetime_local).
	ErrDuplicateBooking = errors.New("duplicate booking")

	ErrBookingNotFound = errors.New("booking not found")
)
