package app

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Store is the persistence collaborator for bookings.
type Store interface {
	InsertBooking(ctx context.Context, b *Booking) error
	ListBookings(ctx context.Context) ([]Booking, error)
	GetBooking(ctx context.Context, id int64) (*Booking, error)
	UpdateBookingTime(ctx context.Context, id int64, localDisplay string, utc time.Time) error
	DeleteBooking(ctx context.Context, id int64) error
}

// MailSender is the email collaborator. It receives already-reconciled
// local display values and never does timezone math of its own.
type MailSender interface {
	SendEnquiry(b *Booking, invite string) error
	SendConfirmation(b *Booking, invite string) error
}

type App struct {
	Store  Store
	Mailer MailSender
	Log    *zap.Logger

	// Now is the clock used by policy validation; nil means time.Now.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}
