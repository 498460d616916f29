package helpers

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/eventin/server/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// AdminEmailDomain marks staff accounts; everyone else registers as a
// regular user. Roles are assigned once and never change.
const AdminEmailDomain = "event.in"

const tokenLifetime = time.Hour

// AssignRole derives the role from the registration email's domain.
func AssignRole(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) == 2 && parts[1] == AdminEmailDomain {
		return models.RoleAdmin
	}
	return models.RoleUser
}

// GenerateToken issues a signed HS256 access token for the user.
func GenerateToken(user *models.User, secret string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID.String(),
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %v", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies an access token.
func ValidateToken(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %v", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	return claims, nil
}

var (
	lowerRegex   = regexp.MustCompile(`[a-z]`)
	upperRegex   = regexp.MustCompile(`[A-Z]`)
	numberRegex  = regexp.MustCompile(`\d`)
	specialRegex = regexp.MustCompile(`[@$!%*?&]`)
)

// IsPasswordStrong requires 8-15 characters with at least one lowercase
// letter, one uppercase letter, one digit, and one special character.
func IsPasswordStrong(password string) bool {
	if len(password) < 8 || len(password) > 15 {
		return false
	}
	return lowerRegex.MatchString(password) &&
		upperRegex.MatchString(password) &&
		numberRegex.MatchString(password) &&
		specialRegex.MatchString(password)
}
