package impl

import (
	"context"
	"testing"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	mockRepo "portal/internal/mocks/repository"
	mockSvc "portal/internal/mocks/service"
	mockUsecase "portal/internal/mocks/usecase"
	"portal/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service  usecase.AuthUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
	sessions *mockUsecase.MockSessionIssuer
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	sessions := mockUsecase.NewMockSessionIssuer(t)

	service := NewAuthService(AuthServiceParams{
		UserRepo:      userRepo,
		Hasher:        hasher,
		SessionIssuer: sessions,
		Logger:        newDiscardLogger(),
	})

	return authServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
		sessions: sessions,
	}
}

func assertAppError(t *testing.T, err error, want *domainerrors.BaseError) {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, want)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, want.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, want.HTTPCode(), appErr.HTTPCode())
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	field := "Data Science"
	input := &usecase.SignupInput{Name: "Ada", Email: "ada@example.com", Password: "secret123", FieldOfStudy: &field}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password, "").Return("digest", "salt", nil)
	fx.hasher.EXPECT().Encode("salt", "digest").Return("salt:digest")
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "salt:digest", user.PasswordHash)
			assert.Equal(t, &field, user.FieldOfStudy)
			assert.Empty(t, user.Interests)
			assert.True(t, user.IsActive)
			assert.False(t, user.CreatedAt.IsZero())
			user.ID = "user-1"
		}).
		Return("user-1", nil)
	fx.sessions.EXPECT().Issue(ctx, "user-1").Return("token-1", nil)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "token-1", output.Token)
	assert.Equal(t, entity.UserSummary{ID: "user-1", Name: "Ada", Email: "ada@example.com"}, output.User)
}

func TestAuthService_Signup_EmailAlreadyRegistered(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := &usecase.SignupInput{Name: "Ada", Email: "ada@example.com", Password: "secret123"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(&entity.User{ID: "user-1"}, nil)

	output, err := fx.service.Signup(ctx, input)

	assert.Nil(t, output)
	assertAppError(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAuthService_Signup_LostRaceOnInsert(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := &usecase.SignupInput{Name: "Ada", Email: "ada@example.com", Password: "secret123"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password, "").Return("digest", "salt", nil)
	fx.hasher.EXPECT().Encode("salt", "digest").Return("salt:digest")
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return("", repository.ErrDuplicateEmail)

	output, err := fx.service.Signup(ctx, input)

	assert.Nil(t, output)
	assertAppError(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAuthService_Signup_StoreErrors(t *testing.T) {
	storeErr := errors.New("connection refused")

	tests := []struct {
		name  string
		setup func(fx authServiceFixtures, input *usecase.SignupInput)
	}{
		{
			name: "lookup fails",
			setup: func(fx authServiceFixtures, input *usecase.SignupInput) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, input.Email).Return(nil, storeErr)
			},
		},
		{
			name: "insert fails",
			setup: func(fx authServiceFixtures, input *usecase.SignupInput) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, input.Email).Return(nil, repository.ErrUserNotFound)
				fx.hasher.EXPECT().Hash(input.Password, "").Return("digest", "salt", nil)
				fx.hasher.EXPECT().Encode("salt", "digest").Return("salt:digest")
				fx.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return("", storeErr)
			},
		},
		{
			name: "session issue fails after insert",
			setup: func(fx authServiceFixtures, input *usecase.SignupInput) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, input.Email).Return(nil, repository.ErrUserNotFound)
				fx.hasher.EXPECT().Hash(input.Password, "").Return("digest", "salt", nil)
				fx.hasher.EXPECT().Encode("salt", "digest").Return("salt:digest")
				fx.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return("user-1", nil)
				fx.sessions.EXPECT().Issue(mock.Anything, "user-1").Return("", storeErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			input := &usecase.SignupInput{Name: "Ada", Email: "ada@example.com", Password: "secret123"}
			tt.setup(fx, input)

			output, err := fx.service.Signup(context.Background(), input)

			assert.Nil(t, output)
			assertAppError(t, err, domainerrors.ErrStoreUnavailable)
		})
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := &usecase.LoginInput{Email: "ada@example.com", Password: "secret123"}
	stored := &entity.User{ID: "user-1", Name: "Ada", Email: input.Email, PasswordHash: "salt:digest"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(stored, nil)
	fx.hasher.EXPECT().Decode("salt:digest").Return("salt", "digest", nil)
	fx.hasher.EXPECT().Verify(input.Password, "digest", "salt").Return(true)
	fx.sessions.EXPECT().Issue(ctx, "user-1").Return("token-2", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "token-2", output.Token)
	assert.Equal(t, stored.Summary(), output.User)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "secret123"})

	assert.Nil(t, output)
	assertAppError(t, err, domainerrors.ErrInvalidCredentials)
	fx.sessions.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	stored := &entity.User{ID: "user-1", Email: "ada@example.com", PasswordHash: "salt:digest"}

	fx.userRepo.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)
	fx.hasher.EXPECT().Decode("salt:digest").Return("salt", "digest", nil)
	fx.hasher.EXPECT().Verify("wrong", "digest", "salt").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: stored.Email, Password: "wrong"})

	assert.Nil(t, output)
	assertAppError(t, err, domainerrors.ErrInvalidCredentials)
	fx.sessions.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestAuthService_Login_CorruptCredential(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	stored := &entity.User{ID: "user-1", Email: "ada@example.com", PasswordHash: "no-separator"}

	fx.userRepo.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)
	fx.hasher.EXPECT().Decode("no-separator").Return("", "", errors.New("malformed stored credential"))

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: stored.Email, Password: "secret123"})

	assert.Nil(t, output)
	assertAppError(t, err, domainerrors.ErrCorruptCredential)
}

func TestAuthService_Login_StoreUnavailable(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, errors.New("server selection timeout"))

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "secret123"})

	assert.Nil(t, output)
	assertAppError(t, err, domainerrors.ErrStoreUnavailable)
	assert.NotContains(t, err.Error(), "server selection timeout")
}
