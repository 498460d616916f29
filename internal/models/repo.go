package models

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

var Validate = validator.New()

// EventRepo owns the event catalog. AddParticipant performs the
// duplicate check and the append as a single atomic step.
type EventRepo interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEventByID(ctx context.Context, id uuid.UUID) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	UpdateEvent(ctx context.Context, event *Event) (*Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	AddParticipant(ctx context.Context, id uuid.UUID, email string) (*Event, error)
}

// BookingRepo owns booking records. Bookings are never deleted,
// cancellation is an update.
type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *Booking) error
	ListBookingsByUser(ctx context.Context, userID uuid.UUID) ([]*Booking, error)
	GetBookingByUser(ctx context.Context, userID, bookingID uuid.UUID) (*Booking, error)
	UpdateBooking(ctx context.Context, booking *Booking) error
}

// UserRepo owns user accounts. CreateUser checks email uniqueness and
// inserts atomically.
type UserRepo interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
}

// MemoryRepo keeps every collection in process memory, guarded by one
// mutex per collection. It is the default backend and doubles as the
// test fixture.
type MemoryRepo struct {
	eventsMu sync.RWMutex
	events   []*Event

	bookingsMu sync.RWMutex
	bookings   []*Booking

	usersMu sync.RWMutex
	users   []*User
}

func MemoryNewRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// MongodbRepo implements the same repositories on MongoDB.
type MongodbRepo struct {
	mongodbClient *mongo.Client
	database      string
}

func MongodbNewRepo(mongodbClient *mongo.Client, database string) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
		database:      database,
	}
}

func (mr *MongodbRepo) collection(name string) *mongo.Collection {
	return mr.mongodbClient.Database(mr.database).Collection(name)
}
