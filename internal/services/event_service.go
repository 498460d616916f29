package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/eventin/server/internal/helpers"
	"github.com/eventin/server/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	eventsCacheKey = "events:all"
	eventsCacheTTL = 5 * time.Minute
)

const forbiddenEventMessage = "You do not have permission to manage events. Only administrators are allowed to perform this action."

// EventService owns the event catalog. Mutations and catalog reads are
// admin-only; registration is open to any authenticated user. The
// admin event list is cached in redis and invalidated on every write.
type EventService struct {
	eventRepo models.EventRepo
	cache     *redis.Client
	logger    *slog.Logger
}

// NewEventService constructs an EventService. cache may be nil, in
// which case every read goes to the repository.
func NewEventService(eventRepo models.EventRepo, cache *redis.Client, logger *slog.Logger) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		cache:     cache,
		logger:    logger,
	}
}

// CreateEvent validates the payload and inserts a fresh event with a
// generated id and an empty participant list.
func (es *EventService) CreateEvent(ctx context.Context, claims *helpers.Claims, body map[string]string) (*models.Event, error) {
	if !claims.IsAdmin() {
		return nil, models.ErrForbidden(forbiddenEventMessage)
	}
	if err := helpers.ValidateCreateEventBody(body); err != nil {
		return nil, err
	}

	now := time.Now()
	event := &models.Event{
		ID:           uuid.New(),
		EventName:    body["event_name"],
		Description:  body["description"],
		Date:         body["date"],
		Time:         body["time"],
		Location:     body["location"],
		CreatedBy:    claims.Name,
		Participants: []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := es.eventRepo.CreateEvent(ctx, event); err != nil {
		return nil, err
	}
	es.invalidateCache(ctx)
	return event, nil
}

// UpdateEvent merges the supplied fields over the stored record.
// Fields not present in the payload keep their prior values.
func (es *EventService) UpdateEvent(ctx context.Context, claims *helpers.Claims, id uuid.UUID, body map[string]string) (*models.Event, error) {
	if !claims.IsAdmin() {
		return nil, models.ErrForbidden(forbiddenEventMessage)
	}
	if err := helpers.ValidateUpdateEventBody(body); err != nil {
		return nil, err
	}

	event, err := es.eventRepo.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name, ok := body["event_name"]; ok {
		event.EventName = name
	}
	if description, ok := body["description"]; ok {
		event.Description = description
	}
	if date, ok := body["date"]; ok {
		event.Date = date
	}
	if eventTime, ok := body["time"]; ok {
		event.Time = eventTime
	}
	if location, ok := body["location"]; ok {
		event.Location = location
	}
	event.UpdatedAt = time.Now()

	updated, err := es.eventRepo.UpdateEvent(ctx, event)
	if err != nil {
		return nil, err
	}
	es.invalidateCache(ctx)
	return updated, nil
}

func (es *EventService) DeleteEvent(ctx context.Context, claims *helpers.Claims, id uuid.UUID) error {
	if !claims.IsAdmin() {
		return models.ErrForbidden(forbiddenEventMessage)
	}
	if err := es.eventRepo.DeleteEvent(ctx, id); err != nil {
		return err
	}
	es.invalidateCache(ctx)
	return nil
}

// ListEvents returns the whole catalog, serving from the cache when
// possible. An empty catalog is reported as not found.
func (es *EventService) ListEvents(ctx context.Context, claims *helpers.Claims) ([]*models.Event, error) {
	if !claims.IsAdmin() {
		return nil, models.ErrForbidden(forbiddenEventMessage)
	}

	if es.cache != nil {
		cached, err := es.cache.Get(ctx, eventsCacheKey).Result()
		if err == nil {
			var events []*models.Event
			if unmarshalErr := json.Unmarshal([]byte(cached), &events); unmarshalErr == nil {
				return events, nil
			}
		}
	}

	events, err := es.eventRepo.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, models.ErrNotFound("No events available")
	}

	if es.cache != nil {
		if data, err := json.Marshal(events); err == nil {
			if err := es.cache.Set(ctx, eventsCacheKey, data, eventsCacheTTL).Err(); err != nil {
				es.logger.Warn("Failed to cache event list", "error", err)
			}
		}
	}
	return events, nil
}

func (es *EventService) GetEvent(ctx context.Context, claims *helpers.Claims, id uuid.UUID) (*models.Event, error) {
	if !claims.IsAdmin() {
		return nil, models.ErrForbidden(forbiddenEventMessage)
	}
	return es.eventRepo.GetEventByID(ctx, id)
}

// RegisterParticipant records the email on the event and returns the
// updated snapshot the booking ledger builds its record from. Any
// authenticated user may register; duplicates are rejected.
func (es *EventService) RegisterParticipant(ctx context.Context, id uuid.UUID, email string) (*models.Event, error) {
	event, err := es.eventRepo.AddParticipant(ctx, id, email)
	if err != nil {
		return nil, err
	}
	es.invalidateCache(ctx)
	return event, nil
}

func (es *EventService) invalidateCache(ctx context.Context) {
	if es.cache == nil {
		return
	}
	if err := es.cache.Del(ctx, eventsCacheKey).Err(); err != nil {
		es.logger.Warn("Failed to invalidate event cache", "error", err)
	}
}
