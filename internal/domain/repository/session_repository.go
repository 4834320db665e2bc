package repository

import (
	"context"
	"errors"

	"portal/internal/domain/entity"
)

// ErrSessionNotFound is returned when no session holds the given token.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists issued sessions. Sessions are never updated or deleted here.
type SessionRepository interface {
	// Create persists a new session and sets session.ID.
	Create(ctx context.Context, session *entity.Session) error

	// FindByToken retrieves the session that holds the token.
	FindByToken(ctx context.Context, token string) (*entity.Session, error)
}
