package helpers_test

import (
	"testing"

	"github.com/eventin/server/internal/helpers"
	"github.com/eventin/server/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignRole(t *testing.T) {
	assert.Equal(t, models.RoleAdmin, helpers.AssignRole("ops@event.in"))
	assert.Equal(t, models.RoleUser, helpers.AssignRole("someone@gmail.com"))
	assert.Equal(t, models.RoleUser, helpers.AssignRole("someone@events.in"))
	assert.Equal(t, models.RoleUser, helpers.AssignRole("not-an-email"))
}

func TestIsPasswordStrong(t *testing.T) {
	assert.True(t, helpers.IsPasswordStrong("Str0ng!pass"))

	assert.False(t, helpers.IsPasswordStrong("Sh0r!t"))                  // too short
	assert.False(t, helpers.IsPasswordStrong("Toolongpassword123!!"))    // too long
	assert.False(t, helpers.IsPasswordStrong("alllowercase1!"))          // no uppercase
	assert.False(t, helpers.IsPasswordStrong("ALLUPPERCASE1!"))          // no lowercase
	assert.False(t, helpers.IsPasswordStrong("NoDigitsHere!"))           // no digit
	assert.False(t, helpers.IsPasswordStrong("NoSpecials123"))           // no special char
}

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{
		ID:    uuid.New(),
		Name:  "Jamie Admin",
		Email: "jamie@event.in",
		Role:  models.RoleAdmin,
	}

	token, err := helpers.GenerateToken(user, "test-secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := helpers.ValidateToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Name, claims.Name)
	assert.True(t, claims.IsAdmin())
}

func TestValidateToken_WrongSecret(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "u@x.com", Role: models.RoleUser}

	token, err := helpers.GenerateToken(user, "right-secret")
	require.NoError(t, err)

	_, err = helpers.ValidateToken(token, "wrong-secret")
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := helpers.ValidateToken("not.a.token", "secret")
	assert.Error(t, err)
}
