package routes

import (
	"github.com/eventin/server/internal/container"
	"github.com/eventin/server/internal/handlers"
	"github.com/eventin/server/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(c *container.Container) *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	// Event payloads use a strict field allow-list; unknown keys must
	// fail validation for every bound body.
	gin.EnableJsonDecoderDisallowUnknownFields()

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID", "X-API-Key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(middleware.ErrorHandler(c.Logger))
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(c.Config.RateLimitRPS, c.Config.RateLimitBurst))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{
			"status":  "OK",
			"service": "eventin-api",
		})
	})

	api := r.Group("/")
	api.Use(middleware.APIKey(c.Config.APIKey))

	userRoutes := api.Group("/users")
	{
		userRoutes.POST("/register", handlers.RegisterUser(c.UserService))
		userRoutes.POST("/login", handlers.LoginUser(c.UserService))
	}

	protected := api.Group("/")
	protected.Use(middleware.Auth(c.Config.JWTSecret))

	eventRoutes := protected.Group("/events")
	{
		eventRoutes.POST("", handlers.CreateEvent(c.EventService))
		eventRoutes.GET("", handlers.ListEvents(c.EventService))
		eventRoutes.GET("/:id", handlers.GetEvent(c.EventService))
		eventRoutes.PATCH("/:id", handlers.UpdateEvent(c.EventService))
		eventRoutes.DELETE("/:id", handlers.DeleteEvent(c.EventService))
		eventRoutes.POST("/:id/register", handlers.RegisterEvent(c.EventService, c.BookingService))
	}

	bookingRoutes := protected.Group("/bookings")
	{
		bookingRoutes.GET("", handlers.ListBookings(c.BookingService))
		bookingRoutes.GET("/:id", handlers.GetBooking(c.BookingService))
		bookingRoutes.PUT("/:id/cancel", handlers.CancelBooking(c.BookingService))
	}

	return r
}
