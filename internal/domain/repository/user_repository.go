// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"portal/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the store's uniqueness constraint on email rejects an insert.
	ErrDuplicateEmail = errors.New("duplicate email")
)

// UserRepository is the credential store. It owns User records.
type UserRepository interface {
	// FindByEmail retrieves a single user by exact email match.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a single user by its store-assigned identity.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// Create persists a new user, sets user.ID and returns it.
	// It returns ErrDuplicateEmail when another record already holds the email.
	Create(ctx context.Context, user *entity.User) (string, error)
}
