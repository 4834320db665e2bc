package usecase

import (
	"context"

	"portal/internal/domain/entity"
)

// SessionIssuer mints session tokens and resolves them back to their users.
type SessionIssuer interface {
	// Issue creates and persists a session for userID and returns its token.
	Issue(ctx context.Context, userID string) (string, error)
	// Resolve returns the user a token was issued to.
	Resolve(ctx context.Context, token string) (*entity.User, error)
}
