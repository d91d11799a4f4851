package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const genericBookingError = "Something went wrong while processing your booking."

type createBookingReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Date    string `json:"date"` // YYYY-MM-DD
	Time    string `json:"time"` // HH:MM
	Service string `json:"service"`
}

type deleteBookingReq struct {
	ID int64 `json:"id"`
}

type confirmBookingReq struct {
	ID      int64  `json:"id"`
	Action  string `json:"action"` // "accept" or "change"
	NewDate string `json:"newDate,omitempty"`
	NewTime string `json:"newTime,omitempty"`
}

func parseCivil(dateStr, timeStr string) (int, time.Month, int, int, int, error) {
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return 0, 0, 0, 0, 0, fmt.Errorf("invalid date %q", dateStr)
	}
	t, err := time.Parse("15:04", timeStr)
	if err != nil {
		return 0, 0, 0, 0, 0, fmt.Errorf("invalid time %q", timeStr)
	}
	return d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), nil
}

// POST /api/bookings
func (a *App) CreateBookingHandler(c *gin.Context) {
	var req createBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" || req.Email == "" || req.Date == "" || req.Time == "" || req.Service == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields."})
		return
	}

	year, month, day, hour, minute, err := parseCivil(req.Date, req.Time)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	localDisplay, utc := ToAbsolute(year, month, day, hour, minute)
	wall := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)

	// One clock sample for the whole validation.
	nowLocal := NowInMelbourne(a.now(), year, month, day)
	if err := ValidateBooking(wall, nowLocal, hour); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b := &Booking{
		Name:         req.Name,
		Email:        req.Email,
		Service:      req.Service,
		LocalDisplay: localDisplay,
		UTC:          utc,
	}

	ctx := c.Request.Context()
	if err := a.Store.InsertBooking(ctx, b); err != nil {
		if errors.Is(err, ErrDuplicateBooking) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You already have a booking at this time."})
			return
		}
		a.Log.Error("insert booking failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": genericBookingError, "details": err.Error()})
		return
	}

	invite, err := BuildInvite(b.ID, b.LocalDisplay, b.Service, "Appointment Enquiry at Hellenic Cosmetics", a.now())
	if err == nil {
		err = a.Mailer.SendEnquiry(b, invite)
	}
	if err != nil {
		// The booking is stored at this point; only the notification failed.
		a.Log.Error("enquiry email failed", zap.Int64("booking_id", b.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": genericBookingError, "details": err.Error()})
		return
	}

	a.Log.Info("booking created",
		zap.Int64("booking_id", b.ID),
		zap.String("local", b.LocalDisplay),
		zap.Time("utc", b.UTC))
	c.JSON(http.StatusOK, gin.H{
		"message": "Enquiry submitted and email sent successfully!",
		"booking": b,
	})
}

// GET /api/bookings
func (a *App) ListBookingsHandler(c *gin.Context) {
	bookings, err := a.Store.ListBookings(c.Request.Context())
	if err != nil {
		a.Log.Error("list bookings failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Display formatting happens here, at read time, from the stored local
	// string; the write path never pre-renders dashboard fields.
	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		date, clock := SplitForDisplay(b.LocalDisplay)
		views = append(views, BookingView{
			ID:        b.ID,
			Name:      b.Name,
			Email:     b.Email,
			Service:   b.Service,
			Date:      date,
			Time:      clock,
			CreatedAt: FormatDisplayDate(b.CreatedAt),
		})
	}
	c.JSON(http.StatusOK, views)
}

// DELETE /api/bookings
func (a *App) DeleteBookingHandler(c *gin.Context) {
	var req deleteBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing booking ID"})
		return
	}

	if err := a.Store.DeleteBooking(c.Request.Context(), req.ID); err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		a.Log.Error("delete booking failed", zap.Int64("booking_id", req.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	a.Log.Info("booking deleted", zap.Int64("booking_id", req.ID))
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking deleted successfully"})
}

// POST /api/bookings/confirm
func (a *App) ConfirmBookingHandler(c *gin.Context) {
	var req confirmBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	b, err := a.Store.GetBooking(ctx, req.ID)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		a.Log.Error("fetch booking failed", zap.Int64("booking_id", req.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm booking", "details": err.Error()})
		return
	}

	message := "Booking accepted and confirmation email sent."
	if req.Action == "change" {
		if req.NewDate == "" || req.NewTime == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing new date/time"})
			return
		}
		year, month, day, hour, minute, err := parseCivil(req.NewDate, req.NewTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Recompute the pair with the same codec as creation and persist
		// both values in one operation.
		localDisplay, utc := ToAbsolute(year, month, day, hour, minute)
		if err := a.Store.UpdateBookingTime(ctx, req.ID, localDisplay, utc); err != nil {
			if errors.Is(err, ErrBookingNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
				return
			}
			a.Log.Error("reschedule failed", zap.Int64("booking_id", req.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm booking", "details": err.Error()})
			return
		}
		b.LocalDisplay = localDisplay
		b.UTC = utc
		message = "Booking updated and confirmation email sent."
	}

	invite, err := BuildInvite(b.ID, b.LocalDisplay,
		"Confirmed Appointment - "+b.Service,
		"Your appointment at Hellenic Cosmetics is confirmed.",
		a.now())
	if err == nil {
		err = a.Mailer.SendConfirmation(b, invite)
	}
	if err != nil {
		a.Log.Error("confirmation email failed", zap.Int64("booking_id", b.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm booking", "details": err.Error()})
		return
	}

	a.Log.Info("booking confirmed",
		zap.Int64("booking_id", b.ID),
		zap.String("action", req.Action),
		zap.String("local", b.LocalDisplay))
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// GET /healthz
func (a *App) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
