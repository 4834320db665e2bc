// Package impl contains the implementation of the application's business logic.
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

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	sessions usecase.SessionIssuer
	logger   *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	Hasher        service.PasswordHasher
	SessionIssuer usecase.SessionIssuer
	Logger        *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		sessions: params.SessionIssuer,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new account and opens a session for it.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		srv.log(ctx).Warn("Signup rejected, email already registered", slog.String("email", input.Email))

		return nil, errors.WithStack(domainerrors.ErrEmailAlreadyRegistered)
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, srv.storeFailure(ctx, err, "failed to look up email during signup")
	}

	hash, salt, err := srv.hasher.Hash(input.Password, "")
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	user := entity.NewUser(input.Name, input.Email, srv.hasher.Encode(salt, hash), input.FieldOfStudy, time.Now())

	userID, err := srv.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			// Lost the race against a concurrent signup for the same email.
			srv.log(ctx).Warn("Signup rejected by unique email index", slog.String("email", input.Email))

			return nil, errors.WithStack(domainerrors.ErrEmailAlreadyRegistered)
		}

		return nil, srv.storeFailure(ctx, err, "failed to create user during signup")
	}
	user.ID = userID

	// The user record stays in place if issuing the session fails.
	token, err := srv.sessions.Issue(ctx, userID)
	if err != nil {
		return nil, srv.storeFailure(ctx, err, "failed to issue session during signup")
	}

	srv.log(ctx).Debug("Signup completed", slog.String("userID", userID))

	return &usecase.AuthOutput{Token: token, User: user.Summary()}, nil
}

// Login verifies the credentials and opens a new session.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed, unknown email", slog.String("email", input.Email))

			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, srv.storeFailure(ctx, err, "failed to look up email during login")
	}

	salt, hash, err := srv.hasher.Decode(user.PasswordHash)
	if err != nil {
		srv.log(ctx).Error("Stored credential is malformed", slog.String("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrCorruptCredential, err.Error())
	}

	if !srv.hasher.Verify(input.Password, hash, salt) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.String("userID", user.ID))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	token, err := srv.sessions.Issue(ctx, user.ID)
	if err != nil {
		return nil, srv.storeFailure(ctx, err, "failed to issue session during login")
	}

	srv.log(ctx).Debug("Login completed", slog.String("userID", user.ID))

	return &usecase.AuthOutput{Token: token, User: user.Summary()}, nil
}

// storeFailure logs err and converts it to ErrStoreUnavailable. Errors that are
// already domain errors pass through unchanged.
func (srv *authService) storeFailure(ctx context.Context, err error, msg string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	srv.log(ctx).Error(msg, slog.Any("error", err))

	return errors.Wrap(domainerrors.ErrStoreUnavailable, msg)
}
