package notify_test

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/eventin/server/internal/events"
	"github.com/eventin/server/internal/models"
	"github.com/eventin/server/internal/notify"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	mu       sync.Mutex
	sent     []sentMail
	failWith error
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func testBooking() models.Booking {
	return models.Booking{
		ID:        uuid.New(),
		EventName: "Demo",
		UserName:  "Uma User",
		Email:     "u1@x.com",
		Date:      "01-01-2099",
		Time:      "10:00",
		Location:  "Hall A",
		Status:    models.BookingStatusBooked,
	}
}

func TestNotifier_BookingCreatedMail(t *testing.T) {
	mailer := &fakeMailer{}
	notifier := notify.NewMailNotifier(mailer, slog.New(slog.NewTextHandler(io.Discard, nil)))
	booking := testBooking()

	notifier.Handle(events.Event{Type: events.BookingCreated, Booking: booking})

	require.Len(t, mailer.sent, 1)
	mail := mailer.sent[0]
	assert.Equal(t, "u1@x.com", mail.to)
	assert.Contains(t, mail.subject, "Confirmed")
	assert.Contains(t, mail.subject, "Demo")
	assert.Contains(t, mail.body, "Uma User")
	assert.Contains(t, mail.body, "01-01-2099")
	assert.Contains(t, mail.body, "Hall A")
}

func TestNotifier_BookingCanceledMail(t *testing.T) {
	mailer := &fakeMailer{}
	notifier := notify.NewMailNotifier(mailer, slog.New(slog.NewTextHandler(io.Discard, nil)))
	booking := testBooking()
	booking.Status = models.BookingStatusCanceled

	notifier.Handle(events.Event{Type: events.BookingCanceled, Booking: booking})

	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].subject, "Canceled")
}

func TestNotifier_DeliveryFailureIsSwallowed(t *testing.T) {
	mailer := &fakeMailer{failWith: errors.New("smtp unreachable")}
	notifier := notify.NewMailNotifier(mailer, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NotPanics(t, func() {
		notifier.Handle(events.Event{Type: events.BookingCreated, Booking: testBooking()})
	})
	assert.Empty(t, mailer.sent)
}

func TestNotifier_IgnoresUnknownEventTypes(t *testing.T) {
	mailer := &fakeMailer{}
	notifier := notify.NewMailNotifier(mailer, slog.New(slog.NewTextHandler(io.Discard, nil)))

	notifier.Handle(events.Event{Type: "something.else", Booking: testBooking()})
	assert.Empty(t, mailer.sent)
}
