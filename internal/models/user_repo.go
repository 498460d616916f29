package models

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const UsersCollection = "users"

// In-memory implementation

// CreateUser holds the write lock across the duplicate-email check and
// the insert.
func (mem *MemoryRepo) CreateUser(ctx context.Context, user *User) error {
	mem.usersMu.Lock()
	defer mem.usersMu.Unlock()

	for _, existing := range mem.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return ErrConflict("User already exists with this email")
		}
	}
	clone := *user
	mem.users = append(mem.users, &clone)
	return nil
}

func (mem *MemoryRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	mem.usersMu.RLock()
	defer mem.usersMu.RUnlock()

	for _, user := range mem.users {
		if strings.EqualFold(user.Email, email) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, ErrNotFound("User does not exist with this email")
}

func (mem *MemoryRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	mem.usersMu.RLock()
	defer mem.usersMu.RUnlock()

	for _, user := range mem.users {
		if user.ID == id {
			clone := *user
			return &clone, nil
		}
	}
	return nil, ErrNotFound("No user found with this ID")
}

// MongoDB implementation

type userDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Password  string    `bson:"password"`
	Role      string    `bson:"role"`
	CreatedAt time.Time `bson:"created_at"`
}

func toUserDoc(user *User) *userDoc {
	return &userDoc{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Password:  user.Password,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

func (doc *userDoc) toUser() (*User, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in document: %v", err)
	}
	return &User{
		ID:        id,
		Name:      doc.Name,
		Email:     doc.Email,
		Password:  doc.Password,
		Role:      doc.Role,
		CreatedAt: doc.CreatedAt,
	}, nil
}

// CreateUser expects a unique index on the email field so the
// uniqueness check happens inside the insert itself.
func (mr *MongodbRepo) CreateUser(ctx context.Context, user *User) error {
	_, err := mr.collection(UsersCollection).InsertOne(ctx, toUserDoc(user))
	if mongo.IsDuplicateKeyError(err) {
		return ErrConflict("User already exists with this email")
	}
	if err != nil {
		return fmt.Errorf("failed to insert user: %v", err)
	}
	return nil
}

func (mr *MongodbRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var doc userDoc
	err := mr.collection(UsersCollection).FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound("User does not exist with this email")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}
	return doc.toUser()
}

func (mr *MongodbRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var doc userDoc
	err := mr.collection(UsersCollection).FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound("No user found with this ID")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}
	return doc.toUser()
}
