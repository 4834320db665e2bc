package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionIssuer implements the SessionIssuer interface.
type sessionIssuer struct {
	sessionRepo repository.SessionRepository
	userRepo    repository.UserRepository
	tokens      service.TokenGenerator
	logger      *slog.Logger
}

// SessionIssuerParams holds dependencies for SessionIssuer, injected by Fx.
type SessionIssuerParams struct {
	fx.In

	SessionRepo    repository.SessionRepository
	UserRepo       repository.UserRepository
	TokenGenerator service.TokenGenerator
	Logger         *slog.Logger
}

// NewSessionIssuer is the constructor for sessionIssuer.
func NewSessionIssuer(params SessionIssuerParams) usecase.SessionIssuer {
	return &sessionIssuer{
		sessionRepo: params.SessionRepo,
		userRepo:    params.UserRepo,
		tokens:      params.TokenGenerator,
		logger:      params.Logger,
	}
}

func (srv *sessionIssuer) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Issue mints a token for userID and records the session. Token uniqueness rests on
// its entropy; the store is not consulted first.
func (srv *sessionIssuer) Issue(ctx context.Context, userID string) (string, error) {
	token, err := srv.tokens.Generate()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate session token")
	}

	session := &entity.Session{
		UserID:    userID,
		Token:     token,
		CreatedAt: time.Now().UTC(),
	}

	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return "", errors.Wrap(err, "failed to persist session")
	}

	srv.log(ctx).Debug("Session issued", slog.String("userID", userID), slog.String("sessionID", session.ID))

	return token, nil
}

// Resolve maps a bearer token back to its user. Unknown tokens and sessions whose
// user no longer exists both yield ErrUnauthorized.
func (srv *sessionIssuer) Resolve(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	session, err := srv.sessionRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUnauthorized)
		}
		srv.log(ctx).Error("Failed to look up session", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrStoreUnavailable, "failed to look up session")
	}

	user, err := srv.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Session refers to a missing user", slog.String("userID", session.UserID))

			return nil, errors.WithStack(domainerrors.ErrUnauthorized)
		}
		srv.log(ctx).Error("Failed to load session user", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrStoreUnavailable, "failed to load session user")
	}

	return user, nil
}
