// Package events carries domain events from the booking ledger to
// decoupled observers such as the mail notifier.
package events

import (
	"sync"
	"time"

	"github.com/eventin/server/internal/models"
)

// Type identifies published event categories.
type Type string

const (
	BookingCreated  Type = "booking.created"
	BookingCanceled Type = "booking.canceled"
)

// Event captures a booking lifecycle transition for observers.
type Event struct {
	Type           Type
	Booking        models.Booking
	RecipientName  string
	RecipientEmail string
	Timestamp      time.Time
}

// Listener consumes published events.
type Listener interface {
	Handle(Event)
}

// Bus is a fire-and-forget observer dispatcher. Publish hands the event
// to each listener on its own goroutine and returns immediately, so a
// slow or failing listener can never block the command that emitted it.
type Bus struct {
	mu        sync.RWMutex
	listeners []Listener
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a listener for all event types.
func (b *Bus) Subscribe(listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, listener)
}

// Publish delivers the event to every listener asynchronously.
func (b *Bus) Publish(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, listener := range b.listeners {
		go listener.Handle(event)
	}
}
