package app

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB implements Store against Postgres.
type DB struct {
	Pool *pgxpool.Pool
}

const uniqueViolation = "23505"

func (d *DB) InsertBooking(ctx context.Context, b *Booking) error {
	q := `INSERT INTO bookings
	      (name, email, service, appointment_datetime_local, appointment_datetime_utc, created_at)
	      VALUES ($1,$2,$3,$4,$5,now())
	      RETURNING id, created_at`
	err := d.Pool.QueryRow(ctx, q,
		b.Name, b.Email, b.Service, b.LocalDisplay, b.UTC).Scan(&b.ID, &b.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicateBooking
	}
	return err
}

func (d *DB) ListBookings(ctx context.Context) ([]Booking, error) {
	q := `SELECT id, name, email, service, appointment_datetime_local, appointment_datetime_utc, created_at
	      FROM bookings
	      ORDER BY appointment_datetime_local ASC`
	rows, err := d.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(&b.ID, &b.Name, &b.Email, &b.Service,
			&b.LocalDisplay, &b.UTC, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (d *DB) GetBooking(ctx context.Context, id int64) (*Booking, error) {
	q := `SELECT id, name, email, service, appointment_datetime_local, appointment_datetime_utc, created_at
	      FROM bookings WHERE id=$1`
	var b Booking
	err := d.Pool.QueryRow(ctx, q, id).Scan(&b.ID, &b.Name, &b.Email, &b.Service,
		&b.LocalDisplay, &b.UTC, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateBookingTime persists a rescheduled pair. Both columns change in a
// single statement so no reader can observe a half-updated booking.
func (d *DB) UpdateBookingTime(ctx context.Context, id int64, localDisplay string, utc time.Time) error {
	q := `UPDATE bookings
	      SET appointment_datetime_local=$1, appointment_datetime_utc=$2
	      WHERE id=$3`
	tag, err := d.Pool.Exec(ctx, q, localDisplay, utc, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (d *DB) DeleteBooking(ctx context.Context, id int64) error {
	tag, err := d.Pool.Exec(ctx, `DELETE FROM bookings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}
	return nil
}
