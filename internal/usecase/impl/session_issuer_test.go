package impl

import (
	"context"
	"testing"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	mockRepo "portal/internal/mocks/repository"
	mockSvc "portal/internal/mocks/service"
	"portal/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionIssuerFixtures struct {
	issuer      usecase.SessionIssuer
	sessionRepo *mockRepo.MockSessionRepository
	userRepo    *mockRepo.MockUserRepository
	tokens      *mockSvc.MockTokenGenerator
}

func createTestSessionIssuer(t *testing.T) sessionIssuerFixtures {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	tokens := mockSvc.NewMockTokenGenerator(t)

	return sessionIssuerFixtures{
		issuer: NewSessionIssuer(SessionIssuerParams{
			SessionRepo:    sessionRepo,
			UserRepo:       userRepo,
			TokenGenerator: tokens,
			Logger:         newDiscardLogger(),
		}),
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		tokens:      tokens,
	}
}

func TestSessionIssuer_Issue(t *testing.T) {
	fx := createTestSessionIssuer(t)
	ctx := context.Background()
	before := time.Now().UTC()

	fx.tokens.EXPECT().Generate().Return("opaque-token", nil)
	fx.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(_ context.Context, session *entity.Session) {
			assert.Equal(t, "user-1", session.UserID)
			assert.Equal(t, "opaque-token", session.Token)
			assert.Equal(t, time.UTC, session.CreatedAt.Location())
			assert.False(t, session.CreatedAt.Before(before))
		}).
		Return(nil)

	token, err := fx.issuer.Issue(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, "opaque-token", token)
}

func TestSessionIssuer_Issue_GeneratorFails(t *testing.T) {
	fx := createTestSessionIssuer(t)

	fx.tokens.EXPECT().Generate().Return("", errors.New("entropy exhausted"))

	token, err := fx.issuer.Issue(context.Background(), "user-1")

	require.Error(t, err)
	assert.Empty(t, token)
	fx.sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSessionIssuer_Issue_PersistFails(t *testing.T) {
	fx := createTestSessionIssuer(t)
	storeErr := errors.New("write concern error")

	fx.tokens.EXPECT().Generate().Return("opaque-token", nil)
	fx.sessionRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(storeErr)

	token, err := fx.issuer.Issue(context.Background(), "user-1")

	assert.Empty(t, token)
	assert.ErrorIs(t, err, storeErr)
}

func TestSessionIssuer_Resolve(t *testing.T) {
	fx := createTestSessionIssuer(t)
	ctx := context.Background()
	user := &entity.User{ID: "user-1", Name: "Ada", Email: "ada@example.com"}

	fx.sessionRepo.EXPECT().FindByToken(ctx, "opaque-token").Return(&entity.Session{UserID: "user-1", Token: "opaque-token"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, "user-1").Return(user, nil)

	got, err := fx.issuer.Resolve(ctx, "opaque-token")

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestSessionIssuer_Resolve_Errors(t *testing.T) {
	storeErr := errors.New("socket closed")

	tests := []struct {
		name    string
		token   string
		setup   func(fx sessionIssuerFixtures)
		wantErr *domainerrors.BaseError
	}{
		{
			name:    "empty token",
			token:   "",
			setup:   func(sessionIssuerFixtures) {},
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:  "unknown token",
			token: "nope",
			setup: func(fx sessionIssuerFixtures) {
				fx.sessionRepo.EXPECT().FindByToken(mock.Anything, "nope").Return(nil, repository.ErrSessionNotFound)
			},
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:  "user deleted",
			token: "orphan",
			setup: func(fx sessionIssuerFixtures) {
				fx.sessionRepo.EXPECT().FindByToken(mock.Anything, "orphan").Return(&entity.Session{UserID: "gone"}, nil)
				fx.userRepo.EXPECT().FindByID(mock.Anything, "gone").Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:  "session store down",
			token: "tok",
			setup: func(fx sessionIssuerFixtures) {
				fx.sessionRepo.EXPECT().FindByToken(mock.Anything, "tok").Return(nil, storeErr)
			},
			wantErr: domainerrors.ErrStoreUnavailable,
		},
		{
			name:  "user store down",
			token: "tok",
			setup: func(fx sessionIssuerFixtures) {
				fx.sessionRepo.EXPECT().FindByToken(mock.Anything, "tok").Return(&entity.Session{UserID: "user-1"}, nil)
				fx.userRepo.EXPECT().FindByID(mock.Anything, "user-1").Return(nil, storeErr)
			},
			wantErr: domainerrors.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSessionIssuer(t)
			tt.setup(fx)

			user, err := fx.issuer.Resolve(context.Background(), tt.token)

			assert.Nil(t, user)
			assertAppError(t, err, tt.wantErr)
		})
	}
}
