package services_test

import (
	"context"
	"testing"

	"github.com/eventin/server/internal/helpers"
	"github.com/eventin/server/internal/models"
	"github.com/eventin/server/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newUserService() *services.UserService {
	return services.NewUserService(models.MemoryNewRepo(), testSecret)
}

func registerRequest() models.RegisterUserRequest {
	return models.RegisterUserRequest{
		Name:     "Uma User",
		Email:    "uma@gmail.com",
		Password: "Str0ng!pass",
	}
}

func TestRegister_AssignsRoleFromEmailDomain(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)

	adminReq := registerRequest()
	adminReq.Email = "ops@event.in"
	admin, err := svc.Register(ctx, adminReq)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerRequest())
	require.Error(t, err)

	var domainErr *models.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, models.KindConflict, domainErr.Kind)
}

func TestRegister_InvalidPayloads(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	cases := []struct {
		name string
		req  models.RegisterUserRequest
	}{
		{"digits in name", models.RegisterUserRequest{Name: "User 99", Email: "a@b.com", Password: "Str0ng!pass"}},
		{"bad email", models.RegisterUserRequest{Name: "Uma User", Email: "not-an-email", Password: "Str0ng!pass"}},
		{"weak password", models.RegisterUserRequest{Name: "Uma User", Email: "a@b.com", Password: "password"}},
		{"missing fields", models.RegisterUserRequest{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.req)
			require.Error(t, err)

			var domainErr *models.Error
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, models.KindInvalidPayload, domainErr.Kind)
		})
	}
}

func TestRegister_DoesNotStorePlaintextPassword(t *testing.T) {
	svc := newUserService()

	user, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ng!pass", user.Password)
}

func TestLogin_Success(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	token, user, err := svc.Login(ctx, models.LoginRequest{Email: "uma@gmail.com", Password: "Str0ng!pass"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	claims, err := helpers.ValidateToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, registered.ID.String(), claims.UserID)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, models.LoginRequest{Email: "uma@gmail.com", Password: "Wrong1!pass"})
	require.Error(t, err)

	var domainErr *models.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, models.KindInvalidPayload, domainErr.Kind)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newUserService()

	_, _, err := svc.Login(context.Background(), models.LoginRequest{Email: "ghost@x.com", Password: "Str0ng!pass"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}
