package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BookingStatusBooked   = "Booked"
	BookingStatusCanceled = "Canceled"
)

// Booking is a user's registration record for one event. Event fields
// are denormalized at creation time: later event updates or deletes do
// not rewrite booking history.
type Booking struct {
	ID        uuid.UUID `json:"id"`
	EventID   uuid.UUID `json:"event_id"`
	EventName string    `json:"event_name"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Location  string    `json:"location"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) Clone() *Booking {
	clone := *b
	return &clone
}
