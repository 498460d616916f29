// Package handlers translates HTTP requests into service calls and
// domain results back into the response envelope.
package handlers

import (
	"net/http"
	"strings"

	"github.com/eventin/server/internal/helpers"
	"github.com/eventin/server/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentClaims pulls the authenticated claims set by the auth
// middleware. A missing value means the route was wired without the
// middleware, which is a server bug, not a client error.
func currentClaims(c *gin.Context) (*helpers.Claims, bool) {
	value, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("Unauthorized"))
		return nil, false
	}
	claims, ok := value.(*helpers.Claims)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Invalid user claims"))
		return nil, false
	}
	return claims, true
}

// parseIDParam normalizes and parses a UUID path parameter.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	raw := strings.TrimSpace(c.Param(name))
	raw = strings.Trim(raw, "\"'")
	if raw == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("ID is required"))
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid ID format"))
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps a domain error onto its transport status. Unknown
// errors surface as a generic 500 so internals never leak.
func respondError(c *gin.Context, err error) {
	status := models.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.JSON(status, models.ErrorResponse("Internal Server Error"))
		return
	}
	c.JSON(status, models.ErrorResponse(err.Error()))
}
