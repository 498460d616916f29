package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/eventin/server/internal/events"
	"github.com/eventin/server/internal/helpers"
	"github.com/eventin/server/internal/models"
	"github.com/eventin/server/internal/services"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func adminClaims() *helpers.Claims {
	return &helpers.Claims{
		UserID: uuid.New().String(),
		Name:   "Jamie Admin",
		Email:  "jamie@event.in",
		Role:   models.RoleAdmin,
	}
}

func userClaims(email string) *helpers.Claims {
	return &helpers.Claims{
		UserID: uuid.New().String(),
		Name:   "Uma User",
		Email:  email,
		Role:   models.RoleUser,
	}
}

func tomorrow() string {
	return time.Now().AddDate(0, 0, 1).Format("02-01-2006")
}

func demoEventBody() map[string]string {
	return map[string]string{
		"event_name":  "Demo",
		"description": "d",
		"date":        tomorrow(),
		"time":        "10:00",
		"location":    "Hall A",
	}
}

func newEventService(t *testing.T) *services.EventService {
	t.Helper()
	return services.NewEventService(models.MemoryNewRepo(), nil, testLogger())
}

func TestCreateEvent_Success(t *testing.T) {
	svc := newEventService(t)
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, adminClaims(), demoEventBody())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, "Demo", event.EventName)
	assert.Equal(t, "Jamie Admin", event.CreatedBy)
	assert.Empty(t, event.Participants)
	assert.NotNil(t, event.Participants)
}

func TestCreateEvent_Forbidden(t *testing.T) {
	svc := newEventService(t)

	_, err := svc.CreateEvent(context.Background(), userClaims("u1@x.com"), demoEventBody())
	require.Error(t, err)

	var domainErr *models.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, models.KindForbidden, domainErr.Kind)
}

func TestCreateEvent_InvalidPayload(t *testing.T) {
	svc := newEventService(t)
	body := demoEventBody()
	body["date"] = "01-01-2020"

	_, err := svc.CreateEvent(context.Background(), adminClaims(), body)
	require.Error(t, err)

	var domainErr *models.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, models.KindInvalidPayload, domainErr.Kind)
}

func TestCreateEvent_UniqueIDs(t *testing.T) {
	svc := newEventService(t)
	ctx := context.Background()
	admin := adminClaims()

	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 20; i++ {
		event, err := svc.CreateEvent(ctx, admin, demoEventBody())
		require.NoError(t, err)
		assert.False(t, seen[event.ID])
		seen[event.ID] = true
	}
}

func TestGetEvent_RoundTrip(t *testing.T) {
	svc := newEventService(t)
	ctx := context.Background()
	admin := adminClaims()

	created, err := svc.CreateEvent(ctx, admin, demoEventBody())
	require.NoError(t, err)

	got, err := svc.GetEvent(ctx, admin, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.EventName, got.EventName)
	assert.Equal(t, created.Description, got.Description)
	assert.Equal(t, created.Date, got.Date)
	assert.Equal(t, created.Time, got.Time)
	assert.Equal(t, created.Location, got.Location)
	assert.Empty(t, got.Participants)
}

func TestGetEvent_NotFound(t *testing.T) {
	svc := newEventService(t)

	_, err := svc.GetEvent(context.Background(), adminClaims(), uuid.New())
	require.Error(t, err)

	var domainErr *models.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, models.KindNotFound, domainErr.Kind)
}

func TestUpdateEvent_ShallowMerge(t *testing.T) {
	svc := newEventService(t)
	ctx := context.Background()
	admin := adminClaims()

	created, err := svc.CreateEvent(ctx, admin, demoEventBody())
	require.NoError(t, err)

	updated, err := svc.UpdateEvent(ctx, admin, created.ID, map[string]string{"location": "Hall B"})
	require.NoError(t, err)
	assert.Equal(t, "Hall B", updated.Location)
	assert.Equal(t, created.EventName, updated.EventName)
	assert.Equal(t, created.Date, updated.Date)
	assert.Equal(t, created.Time, updated.Time)
}

func TestUpdateEvent_NotFound(t *testing.T) {
	svc := newEventService(t)

	_, err := svc.UpdateEvent(context.Background(), adminClaims(), uuid.New(), map[string]string{"location": "Hall B"})
	require.Error(t, err)

	var domainErr *models.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, models.KindNotFound, domainErr.Kind)
}

func TestUpdateEvent_DoesNotTouchBookings(t *testing.T) {
	repo := models.MemoryNewRepo()
	svc := services.NewEventService(repo, nil, testLogger())
	bookingSvc := services.NewBookingService(repo, events.NewBus())
	ctx := context.Background()
	admin := adminClaims()
	user := userClaims("u1@x.com")

	created, err := svc.CreateEvent(ctx, admin, demoEventBody())
	require.NoError(t, err)

	snapshot, err := svc.RegisterParticipant(ctx, created.ID, user.Email)
	require.NoError(t, err)

	booking, err := bookingSvc.CreateBooking(ctx, snapshot, user)
	require.NoError(t, err)

	_, err = svc.UpdateEvent(ctx, admin, created.ID, map[string]string{"location": "Hall Z"})
	require.NoError(t, err)

	userID := uuid.MustParse(user.UserID)
	got, err := bookingSvc.GetBooking(ctx, userID, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hall A", got.Location)
}

func TestDeleteEvent(t *testing.T) {
	svc := newEventService(t)
	ctx := context.Background()
	admin := adminClaims()

	created, err := svc.CreateEvent(ctx, admin, demoEventBody())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEvent(ctx, admin, created.ID))

	_, err = svc.GetEvent(ctx, admin, created.ID)
	assert.Error(t, err)
}

func TestListEvents_EmptyCatalog(t *testing.T) {
	svc := newEventService(t)

	_, err := svc.ListEvents(context.Background(), adminClaims())
	require.Error(t, err)

	var domainErr *models.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, models.KindNotFound, domainErr.Kind)
}

func TestAdminOnlyOperations_Forbidden(t *testing.T) {
	svc := newEventService(t)
	ctx := context.Background()
	user := userClaims("u1@x.com")
	id := uuid.New()

	var domainErr *models.Error

	_, err := svc.UpdateEvent(ctx, user, id, map[string]string{"location": "Hall B"})
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, models.KindForbidden, domainErr.Kind)

	err = svc.DeleteEvent(ctx, user, id)
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, models.KindForbidden, domainErr.Kind)

	_, err = svc.ListEvents(ctx, user)
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, models.KindForbidden, domainErr.Kind)

	_, err = svc.GetEvent(ctx, user, id)
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, models.KindForbidden, domainErr.Kind)
}

func TestRegisterParticipant_Duplicate(t *testing.T) {
	svc := newEventService(t)
	ctx := context.Background()
	admin := adminClaims()

	created, err := svc.CreateEvent(ctx, admin, demoEventBody())
	require.NoError(t, err)

	snapshot, err := svc.RegisterParticipant(ctx, created.ID, "u1@x.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1@x.com"}, snapshot.Participants)

	_, err = svc.RegisterParticipant(ctx, created.ID, "u1@x.com")
	require.Error(t, err)

	var domainErr *models.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, models.KindConflict, domainErr.Kind)

	// Participant count must not have grown.
	got, err := svc.GetEvent(ctx, admin, created.ID)
	require.NoError(t, err)
	assert.Len(t, got.Participants, 1)
}

func TestRegisterParticipant_EventNotFound(t *testing.T) {
	svc := newEventService(t)

	_, err := svc.RegisterParticipant(context.Background(), uuid.New(), "u1@x.com")
	require.Error(t, err)

	var domainErr *models.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, models.KindNotFound, domainErr.Kind)
}

func TestCreateEvent_InvalidatesCache(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	svc := services.NewEventService(models.MemoryNewRepo(), db, testLogger())

	mockRedis.ExpectDel("events:all").SetVal(1)

	_, err := svc.CreateEvent(context.Background(), adminClaims(), demoEventBody())
	require.NoError(t, err)

	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestListEvents_ServedFromCache(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	svc := services.NewEventService(models.MemoryNewRepo(), db, testLogger())

	cached := `[{"id":"6f1a1f64-98aa-4f22-8a9e-3f51c0a3a111","event_name":"Cached","participants":[]}]`
	mockRedis.ExpectGet("events:all").SetVal(cached)

	// The repository is empty; a result can only come from the cache.
	eventList, err := svc.ListEvents(context.Background(), adminClaims())
	require.NoError(t, err)
	require.Len(t, eventList, 1)
	assert.Equal(t, "Cached", eventList[0].EventName)

	assert.NoError(t, mockRedis.ExpectationsWereMet())
}
