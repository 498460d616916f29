package helpers

import (
	"github.com/eventin/server/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the access-token payload. Role is baked in at login time;
// roles are immutable after registration so there is nothing to refresh.
type Claims struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Helper methods for role checking
func (c *Claims) IsAdmin() bool {
	return c.Role == models.RoleAdmin
}

func (c *Claims) HasRole(role string) bool {
	return c.Role == role
}

func (c *Claims) IsOwner(userID string) bool {
	return c.UserID == userID
}
