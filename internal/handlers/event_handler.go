package handlers

import (
	"net/http"

	"github.com/eventin/server/internal/models"
	"github.com/eventin/server/internal/services"
	"github.com/gin-gonic/gin"
)

func CreateEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		var body map[string]string
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request body"))
			return
		}

		event, err := es.CreateEvent(c.Request.Context(), claims, body)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(event, "Event created successfully"))
	}
}

func UpdateEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		var body map[string]string
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request body"))
			return
		}

		event, err := es.UpdateEvent(c.Request.Context(), claims, id, body)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(event, "Event updated successfully"))
	}
}

func DeleteEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		if err := es.DeleteEvent(c.Request.Context(), claims, id); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Event deleted successfully"))
	}
}

func ListEvents(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		eventList, err := es.ListEvents(c.Request.Context(), claims)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(eventList, ""))
	}
}

func GetEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		event, err := es.GetEvent(c.Request.Context(), claims, id)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(event, ""))
	}
}

// RegisterEvent appends the caller to the participant list and creates
// the booking from the returned snapshot in the same request. The mail
// notification rides on the booking event, not on this response.
func RegisterEvent(es *services.EventService, bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		snapshot, err := es.RegisterParticipant(c.Request.Context(), id, claims.Email)
		if err != nil {
			respondError(c, err)
			return
		}

		booking, err := bs.CreateBooking(c.Request.Context(), snapshot, claims)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(booking, "Event registered successfully"))
	}
}
