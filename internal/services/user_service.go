package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/eventin/server/internal/helpers"
	"github.com/eventin/server/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo  models.UserRepo
	jwtSecret string
}

func NewUserService(userRepo models.UserRepo, jwtSecret string) *UserService {
	return &UserService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

// Register creates a new account. The role is derived from the email
// domain once, at registration, and is immutable afterwards.
func (us *UserService) Register(ctx context.Context, req models.RegisterUserRequest) (*models.User, error) {
	if err := models.Validate.Struct(req); err != nil {
		return nil, models.ErrInvalidPayload("Request body must contain 'name', 'email', and 'password'")
	}
	if !helpers.IsValidPersonName(req.Name) {
		return nil, models.ErrInvalidPayload("Name should contain only alphabets and spaces")
	}
	if !helpers.IsValidEmail(req.Email) {
		return nil, models.ErrInvalidPayload("Invalid email format")
	}
	if !helpers.IsPasswordStrong(req.Password) {
		return nil, models.ErrInvalidPayload("Password must be 8-15 characters long, include at least one uppercase letter, one lowercase letter, one digit, and one special character")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	user := &models.User{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Email:     email,
		Password:  string(hash),
		Role:      helpers.AssignRole(email),
		CreatedAt: time.Now(),
	}

	if err := us.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues an access token.
func (us *UserService) Login(ctx context.Context, req models.LoginRequest) (string, *models.User, error) {
	if err := models.Validate.Struct(req); err != nil {
		return "", nil, models.ErrInvalidPayload("Request body must contain 'email' and 'password'")
	}

	user, err := us.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return "", nil, models.ErrInvalidPayload("User does not exist with this email")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", nil, models.ErrInvalidPayload("Invalid password")
	}

	token, err := helpers.GenerateToken(user, us.jwtSecret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %v", err)
	}
	return token, user, nil
}

// GetUser looks up a user by id, used by handlers that need the full
// profile behind a token.
func (us *UserService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return us.userRepo.GetUserByID(ctx, id)
}
