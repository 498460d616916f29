package handlers

import (
	"net/http"

	"github.com/eventin/server/internal/models"
	"github.com/eventin/server/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func ListBookings(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid user ID in token"))
			return
		}

		bookings, err := bs.ListBookings(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(bookings, ""))
	}
}

func GetBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid user ID in token"))
			return
		}

		bookingID, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		booking, err := bs.GetBooking(c.Request.Context(), userID, bookingID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(booking, ""))
	}
}

func CancelBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid user ID in token"))
			return
		}

		bookingID, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		booking, err := bs.CancelBooking(c.Request.Context(), userID, bookingID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(booking, "Booking canceled successfully"))
	}
}
