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

const EventsCollection = "events"

// In-memory implementation

func (mem *MemoryRepo) CreateEvent(ctx context.Context, event *Event) error {
	mem.eventsMu.Lock()
	defer mem.eventsMu.Unlock()

	for _, existing := range mem.events {
		if existing.ID == event.ID {
			return ErrConflict("An event with this ID already exists")
		}
	}
	mem.events = append(mem.events, event.Clone())
	return nil
}

func (mem *MemoryRepo) GetEventByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	mem.eventsMu.RLock()
	defer mem.eventsMu.RUnlock()

	for _, event := range mem.events {
		if event.ID == id {
			return event.Clone(), nil
		}
	}
	return nil, ErrNotFound("No event found with this ID")
}

func (mem *MemoryRepo) ListEvents(ctx context.Context) ([]*Event, error) {
	mem.eventsMu.RLock()
	defer mem.eventsMu.RUnlock()

	events := make([]*Event, 0, len(mem.events))
	for _, event := range mem.events {
		events = append(events, event.Clone())
	}
	return events, nil
}

func (mem *MemoryRepo) UpdateEvent(ctx context.Context, event *Event) (*Event, error) {
	mem.eventsMu.Lock()
	defer mem.eventsMu.Unlock()

	for i, existing := range mem.events {
		if existing.ID == event.ID {
			mem.events[i] = event.Clone()
			return event.Clone(), nil
		}
	}
	return nil, ErrNotFound("No event found with this ID")
}

func (mem *MemoryRepo) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	mem.eventsMu.Lock()
	defer mem.eventsMu.Unlock()

	for i, existing := range mem.events {
		if existing.ID == id {
			mem.events = append(mem.events[:i], mem.events[i+1:]...)
			return nil
		}
	}
	return ErrNotFound("No event found with this ID")
}

// AddParticipant holds the write lock across the duplicate check and
// the append so two identical registrations cannot interleave.
func (mem *MemoryRepo) AddParticipant(ctx context.Context, id uuid.UUID, email string) (*Event, error) {
	mem.eventsMu.Lock()
	defer mem.eventsMu.Unlock()

	for _, event := range mem.events {
		if event.ID != id {
			continue
		}
		for _, participant := range event.Participants {
			if participant == email {
				return nil, ErrConflict("You have already registered for this event")
			}
		}
		event.Participants = append(event.Participants, email)
		return event.Clone(), nil
	}
	return nil, ErrNotFound("No event found with this ID")
}

// MongoDB implementation

// eventDoc is the persisted shape; ids travel as strings so documents
// stay readable and portable across drivers.
type eventDoc struct {
	ID           string    `bson:"_id"`
	EventName    string    `bson:"event_name"`
	Description  string    `bson:"description"`
	Date         string    `bson:"date"`
	Time         string    `bson:"time"`
	Location     string    `bson:"location"`
	CreatedBy    string    `bson:"created_by"`
	Participants []string  `bson:"participants"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func toEventDoc(event *Event) *eventDoc {
	participants := event.Participants
	if participants == nil {
		participants = []string{}
	}
	return &eventDoc{
		ID:           event.ID.String(),
		EventName:    event.EventName,
		Description:  event.Description,
		Date:         event.Date,
		Time:         event.Time,
		Location:     event.Location,
		CreatedBy:    event.CreatedBy,
		Participants: participants,
		CreatedAt:    event.CreatedAt,
		UpdatedAt:    event.UpdatedAt,
	}
}

func (doc *eventDoc) toEvent() (*Event, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid event id in document: %v", err)
	}
	return &Event{
		ID:           id,
		EventName:    doc.EventName,
		Description:  doc.Description,
		Date:         doc.Date,
		Time:         doc.Time,
		Location:     doc.Location,
		CreatedBy:    doc.CreatedBy,
		Participants: doc.Participants,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}, nil
}

func (mr *MongodbRepo) CreateEvent(ctx context.Context, event *Event) error {
	_, err := mr.collection(EventsCollection).InsertOne(ctx, toEventDoc(event))
	if mongo.IsDuplicateKeyError(err) {
		return ErrConflict("An event with this ID already exists")
	}
	if err != nil {
		return fmt.Errorf("failed to insert event: %v", err)
	}
	return nil
}

func (mr *MongodbRepo) GetEventByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	var doc eventDoc
	err := mr.collection(EventsCollection).FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound("No event found with this ID")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %v", err)
	}
	return doc.toEvent()
}

func (mr *MongodbRepo) ListEvents(ctx context.Context) ([]*Event, error) {
	opts := options.Find().SetSort(bson.M{"created_at": 1})
	cursor, err := mr.collection(EventsCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %v", err)
	}
	defer cursor.Close(ctx)

	events := []*Event{}
	for cursor.Next(ctx) {
		var doc eventDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode event: %v", err)
		}
		event, err := doc.toEvent()
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, cursor.Err()
}

func (mr *MongodbRepo) UpdateEvent(ctx context.Context, event *Event) (*Event, error) {
	result, err := mr.collection(EventsCollection).ReplaceOne(ctx, bson.M{"_id": event.ID.String()}, toEventDoc(event))
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %v", err)
	}
	if result.MatchedCount == 0 {
		return nil, ErrNotFound("No event found with this ID")
	}
	return event.Clone(), nil
}

func (mr *MongodbRepo) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	result, err := mr.collection(EventsCollection).DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return fmt.Errorf("failed to delete event: %v", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound("No event found with this ID")
	}
	return nil
}

// AddParticipant relies on a single conditional update so the
// duplicate check and the append cannot interleave.
func (mr *MongodbRepo) AddParticipant(ctx context.Context, id uuid.UUID, email string) (*Event, error) {
	filter := bson.M{"_id": id.String(), "participants": bson.M{"$ne": email}}
	update := bson.M{"$push": bson.M{"participants": email}}

	var doc eventDoc
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := mr.collection(EventsCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Either the event does not exist or the email is already on it.
		if _, getErr := mr.GetEventByID(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, ErrConflict("You have already registered for this event")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to register participant: %v", err)
	}
	return doc.toEvent()
}
