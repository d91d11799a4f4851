package app

import "time"

// Booking is the persistent record. LocalDisplay and UTC are a reconciled
// pair derived from one civil input; they are only ever written together.
type Booking struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Service      string    `json:"service"`
	LocalDisplay string    `json:"appointment_datetime_local"`
	UTC          time.Time `json:"appointment_datetime_utc"`
	CreatedAt    time.Time `json:"created_at"`
}

// BookingView is a display-formatted row for the admin dashboard.
type BookingView struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Service   string `json:"service"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	CreatedAt string `json:"created_at"`
}
