package services

import (
	"context"
	"time"

	"github.com/eventin/server/internal/events"
	"github.com/eventin/server/internal/helpers"
	"github.com/eventin/server/internal/models"
	"github.com/google/uuid"
)

// BookingService owns the booking ledger. Event fields are copied onto
// the booking at creation time so history survives later event edits.
type BookingService struct {
	bookingRepo models.BookingRepo
	bus         *events.Bus
}

func NewBookingService(bookingRepo models.BookingRepo, bus *events.Bus) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		bus:         bus,
	}
}

// CreateBooking records a Booked entry from a registration snapshot
// and publishes BookingCreated for the notifier.
func (bs *BookingService) CreateBooking(ctx context.Context, event *models.Event, claims *helpers.Claims) (*models.Booking, error) {
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, models.ErrInvalidPayload("Invalid user ID in token")
	}

	now := time.Now()
	booking := &models.Booking{
		ID:        uuid.New(),
		EventID:   event.ID,
		EventName: event.EventName,
		UserID:    userID,
		UserName:  claims.Name,
		Email:     claims.Email,
		Date:      event.Date,
		Time:      event.Time,
		Location:  event.Location,
		Status:    models.BookingStatusBooked,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := bs.bookingRepo.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}

	bs.bus.Publish(events.Event{
		Type:           events.BookingCreated,
		Booking:        *booking,
		RecipientName:  claims.Name,
		RecipientEmail: claims.Email,
	})
	return booking, nil
}

// ListBookings returns all bookings owned by the user, canceled ones
// included.
func (bs *BookingService) ListBookings(ctx context.Context, userID uuid.UUID) ([]*models.Booking, error) {
	bookings, err := bs.bookingRepo.ListBookingsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, models.ErrNotFound("No bookings found")
	}
	return bookings, nil
}

func (bs *BookingService) GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*models.Booking, error) {
	return bs.bookingRepo.GetBookingByUser(ctx, userID, bookingID)
}

// CancelBooking transitions Booked to Canceled and publishes
// BookingCanceled. Canceling an already-canceled booking is a no-op
// success: the record is returned unchanged and no event is published.
func (bs *BookingService) CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) (*models.Booking, error) {
	booking, err := bs.bookingRepo.GetBookingByUser(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status == models.BookingStatusCanceled {
		return booking, nil
	}

	booking.Status = models.BookingStatusCanceled
	booking.UpdatedAt = time.Now()
	if err := bs.bookingRepo.UpdateBooking(ctx, booking); err != nil {
		return nil, err
	}

	bs.bus.Publish(events.Event{
		Type:           events.BookingCanceled,
		Booking:        *booking,
		RecipientName:  booking.UserName,
		RecipientEmail: booking.Email,
	})
	return booking, nil
}
