package models

import (
	"time"

	"github.com/google/uuid"
)

// Event is an admin-published activity users can register for.
// Date keeps the DD-MM-YYYY wire format and Time the 24-hour HH:MM
// format; both are validated before an event is ever stored.
type Event struct {
	ID           uuid.UUID `json:"id"`
	EventName    string    `json:"event_name"`
	Description  string    `json:"description"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Location     string    `json:"location"`
	CreatedBy    string    `json:"created_by"`
	Participants []string  `json:"participants"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Clone returns a deep copy so callers cannot mutate stored state
// through a returned snapshot.
func (e *Event) Clone() *Event {
	clone := *e
	clone.Participants = append([]string(nil), e.Participants...)
	return &clone
}
