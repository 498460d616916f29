package container

import (
	"log/slog"

	"github.com/eventin/server/internal/config"
	"github.com/eventin/server/internal/events"
	"github.com/eventin/server/internal/models"
	"github.com/eventin/server/internal/notify"
	"github.com/eventin/server/internal/services"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger *slog.Logger
	Config *config.Config
	Bus    *events.Bus

	UserService    *services.UserService
	EventService   *services.EventService
	BookingService *services.BookingService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cfg *config.Config,
	mongoClient *mongo.Client,
	redisClient *redis.Client,
) *Container {
	// Pick the storage backend behind the repository interfaces.
	var (
		eventRepo   models.EventRepo
		bookingRepo models.BookingRepo
		userRepo    models.UserRepo
	)
	if cfg.StorageBackend == config.StorageMongo {
		repo := models.MongodbNewRepo(mongoClient, cfg.MongoDatabase)
		eventRepo, bookingRepo, userRepo = repo, repo, repo
	} else {
		repo := models.MemoryNewRepo()
		eventRepo, bookingRepo, userRepo = repo, repo, repo
	}

	// Wire the notification path: bus → notifier → mailer.
	var mailer notify.Mailer
	if cfg.SMTPConfigured() {
		mailer = notify.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	} else {
		mailer = notify.NewLogMailer(logger)
	}
	bus := events.NewBus()
	bus.Subscribe(notify.NewMailNotifier(mailer, logger))

	userService := services.NewUserService(userRepo, cfg.JWTSecret)
	eventService := services.NewEventService(eventRepo, redisClient, logger)
	bookingService := services.NewBookingService(bookingRepo, bus)

	return &Container{
		Logger:         logger,
		Config:         cfg,
		Bus:            bus,
		UserService:    userService,
		EventService:   eventService,
		BookingService: bookingService,
	}
}
