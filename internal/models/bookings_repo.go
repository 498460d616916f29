package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const BookingsCollection = "bookings"

// In-memory implementation

func (mem *MemoryRepo) CreateBooking(ctx context.Context, booking *Booking) error {
	mem.bookingsMu.Lock()
	defer mem.bookingsMu.Unlock()

	for _, existing := range mem.bookings {
		if existing.ID == booking.ID {
			return ErrConflict("A booking with this ID already exists")
		}
	}
	mem.bookings = append(mem.bookings, booking.Clone())
	return nil
}

func (mem *MemoryRepo) ListBookingsByUser(ctx context.Context, userID uuid.UUID) ([]*Booking, error) {
	mem.bookingsMu.RLock()
	defer mem.bookingsMu.RUnlock()

	bookings := []*Booking{}
	for _, booking := range mem.bookings {
		if booking.UserID == userID {
			bookings = append(bookings, booking.Clone())
		}
	}
	return bookings, nil
}

func (mem *MemoryRepo) GetBookingByUser(ctx context.Context, userID, bookingID uuid.UUID) (*Booking, error) {
	mem.bookingsMu.RLock()
	defer mem.bookingsMu.RUnlock()

	for _, booking := range mem.bookings {
		if booking.UserID == userID && booking.ID == bookingID {
			return booking.Clone(), nil
		}
	}
	return nil, ErrNotFound("No bookings found")
}

func (mem *MemoryRepo) UpdateBooking(ctx context.Context, booking *Booking) error {
	mem.bookingsMu.Lock()
	defer mem.bookingsMu.Unlock()

	for i, existing := range mem.bookings {
		if existing.ID == booking.ID {
			mem.bookings[i] = booking.Clone()
			return nil
		}
	}
	return ErrNotFound("No bookings found")
}

// MongoDB implementation

type bookingDoc struct {
	ID        string    `bson:"_id"`
	EventID   string    `bson:"event_id"`
	EventName string    `bson:"event_name"`
	UserID    string    `bson:"user_id"`
	UserName  string    `bson:"user_name"`
	Email     string    `bson:"email"`
	Date      string    `bson:"date"`
	Time      string    `bson:"time"`
	Location  string    `bson:"location"`
	Status    string    `bson:"status"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func toBookingDoc(booking *Booking) *bookingDoc {
	return &bookingDoc{
		ID:        booking.ID.String(),
		EventID:   booking.EventID.String(),
		EventName: booking.EventName,
		UserID:    booking.UserID.String(),
		UserName:  booking.UserName,
		Email:     booking.Email,
		Date:      booking.Date,
		Time:      booking.Time,
		Location:  booking.Location,
		Status:    booking.Status,
		CreatedAt: booking.CreatedAt,
		UpdatedAt: booking.UpdatedAt,
	}
}

func (doc *bookingDoc) toBooking() (*Booking, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking id in document: %v", err)
	}
	eventID, err := uuid.Parse(doc.EventID)
	if err != nil {
		return nil, fmt.Errorf("invalid event id in document: %v", err)
	}
	userID, err := uuid.Parse(doc.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in document: %v", err)
	}
	return &Booking{
		ID:        id,
		EventID:   eventID,
		EventName: doc.EventName,
		UserID:    userID,
		UserName:  doc.UserName,
		Email:     doc.Email,
		Date:      doc.Date,
		Time:      doc.Time,
		Location:  doc.Location,
		Status:    doc.Status,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

func (mr *MongodbRepo) CreateBooking(ctx context.Context, booking *Booking) error {
	_, err := mr.collection(BookingsCollection).InsertOne(ctx, toBookingDoc(booking))
	if mongo.IsDuplicateKeyError(err) {
		return ErrConflict("A booking with this ID already exists")
	}
	if err != nil {
		return fmt.Errorf("failed to insert booking: %v", err)
	}
	return nil
}

func (mr *MongodbRepo) ListBookingsByUser(ctx context.Context, userID uuid.UUID) ([]*Booking, error) {
	opts := options.Find().SetSort(bson.M{"created_at": 1})
	cursor, err := mr.collection(BookingsCollection).Find(ctx, bson.M{"user_id": userID.String()}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %v", err)
	}
	defer cursor.Close(ctx)

	bookings := []*Booking{}
	for cursor.Next(ctx) {
		var doc bookingDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %v", err)
		}
		booking, err := doc.toBooking()
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, cursor.Err()
}

func (mr *MongodbRepo) GetBookingByUser(ctx context.Context, userID, bookingID uuid.UUID) (*Booking, error) {
	filter := bson.M{"_id": bookingID.String(), "user_id": userID.String()}

	var doc bookingDoc
	err := mr.collection(BookingsCollection).FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound("No bookings found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %v", err)
	}
	return doc.toBooking()
}

func (mr *MongodbRepo) UpdateBooking(ctx context.Context, booking *Booking) error {
	result, err := mr.collection(BookingsCollection).ReplaceOne(ctx, bson.M{"_id": booking.ID.String()}, toBookingDoc(booking))
	if err != nil {
		return fmt.Errorf("failed to update booking: %v", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound("No bookings found")
	}
	return nil
}
