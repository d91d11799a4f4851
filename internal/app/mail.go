package app

import (
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"
)

const mailSenderName = "Hellenic Cosmetics"

const bookingPolicyText = `Future Bookings Policy:
- A non-refundable deposit is required to secure your booking.
- Appointments may be rescheduled once with 48 hours' notice.
- Cancellations within 48 hours or no-shows forfeit the deposit.
- Please arrive on time. Arrivals more than 10 minutes late may be rescheduled.
- Frequent last-minute changes may affect future booking availability.`

// Mailer sends booking emails over SMTP. All configuration is injected at
// construction; there is no package-level client.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	admin  string
}

func NewMailer(host string, port int, user, password, from, admin string) *Mailer {
	if from == "" {
		from = admin
	}
	return &Mailer{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
		admin:  admin,
	}
}

// SendEnquiry acknowledges a new booking request. The admin is CC'd so
// the studio can follow up.
func (m *Mailer) SendEnquiry(b *Booking, invite string) error {
	date, clock := SplitForDisplay(b.LocalDisplay)
	subject := fmt.Sprintf("Your Appointment Enquiry - %s", b.Service)
	body := fmt.Sprintf(`Dear %s,

Thank you for your appointment enquiry with Hellenic Cosmetics.

Requested Date: %s
Requested Time: %s
Service: %s

Your enquiry has been received. Our team will contact you shortly to confirm availability.

%s

Warm regards,
Hellenic Cosmetics
`, b.Name, date, clock, b.Service, bookingPolicyText)

	return m.send(b.Email, subject, body, invite)
}

// SendConfirmation notifies the customer that the booking was accepted or
// moved to its new time.
func (m *Mailer) SendConfirmation(b *Booking, invite string) error {
	date, clock := SplitForDisplay(b.LocalDisplay)
	subject := "Your Appointment Has Been Confirmed - Hellenic Cosmetics"
	body := fmt.Sprintf(`Dear %s,

Your appointment at Hellenic Cosmetics has been confirmed.

Date: %s
Time: %s
Service: %s

%s

We look forward to welcoming you at our Melbourne studio.
Please reply to this email if you have any questions.

Warm regards,
Hellenic Cosmetics
`, b.Name, date, clock, b.Service, bookingPolicyText)

	return m.send(b.Email, subject, body, invite)
}

func (m *Mailer) send(to, subject, body, invite string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, mailSenderName)
	msg.SetHeader("To", to)
	if m.admin != "" {
		msg.SetHeader("Cc", m.admin)
	}
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	msg.Attach("appointment.ics",
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write([]byte(invite))
			return err
		}),
		gomail.SetHeader(map[string][]string{"Content-Type": {"text/calendar"}}),
	)
	return m.dialer.DialAndSend(msg)
}
