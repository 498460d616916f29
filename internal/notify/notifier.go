// Package notify reacts to booking lifecycle events with best-effort
// mail. Delivery failures are logged and never reach the caller.
package notify

import (
	"fmt"
	"log/slog"

	"github.com/eventin/server/internal/events"
)

// MailNotifier subscribes to the event bus and turns booking
// transitions into confirmation and cancellation mail.
type MailNotifier struct {
	mailer Mailer
	logger *slog.Logger
}

func NewMailNotifier(mailer Mailer, logger *slog.Logger) *MailNotifier {
	return &MailNotifier{
		mailer: mailer,
		logger: logger,
	}
}

func (n *MailNotifier) Handle(event events.Event) {
	var subject, body string

	switch event.Type {
	case events.BookingCreated:
		subject = fmt.Sprintf("Booking Confirmed: %s", event.Booking.EventName)
		body = fmt.Sprintf(
			"Hi %s,\n\nYour registration for %s is confirmed.\n\nDate: %s\nTime: %s\nLocation: %s\nBooking ID: %s\n\nSee you there!",
			event.Booking.UserName,
			event.Booking.EventName,
			event.Booking.Date,
			event.Booking.Time,
			event.Booking.Location,
			event.Booking.ID,
		)
	case events.BookingCanceled:
		subject = fmt.Sprintf("Booking Canceled: %s", event.Booking.EventName)
		body = fmt.Sprintf(
			"Hi %s,\n\nYour booking for %s on %s has been canceled.\nBooking ID: %s",
			event.Booking.UserName,
			event.Booking.EventName,
			event.Booking.Date,
			event.Booking.ID,
		)
	default:
		return
	}

	if err := n.mailer.Send(event.Booking.Email, subject, body); err != nil {
		n.logger.Error("Failed to send booking notification",
			"error", err,
			"booking_id", event.Booking.ID,
			"event_type", string(event.Type),
			"recipient", event.Booking.Email,
		)
		return
	}

	n.logger.Info("Booking notification sent",
		"booking_id", event.Booking.ID,
		"event_type", string(event.Type),
		"recipient", event.Booking.Email,
	)
}
