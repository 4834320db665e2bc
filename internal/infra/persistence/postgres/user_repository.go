package postgres

import (
	"context"

	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
	"portal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByEmail retrieves a single user by exact email match.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindByID retrieves a single user by its UUID identity.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrUserNotFound
	}

	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// Create inserts the user under a new UUID. The unique email index turns a lost
// check-then-insert race into ErrDuplicateEmail.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) (string, error) {
	userM := fromUserDomain(user)
	userM.ID = uuid.NewString()

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return "", repository.ErrDuplicateEmail
		}

		return "", errors.Wrap(err, "failed to create user")
	}

	user.ID = userM.ID

	return user.ID, nil
}

func fromUserDomain(user *entity.User) *model.UserModel {
	interests := user.Interests
	if interests == nil {
		interests = []string{}
	}

	return &model.UserModel{
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		FieldOfStudy: user.FieldOfStudy,
		Interests:    interests,
		IsActive:     user.IsActive,
		CreatedAt:    user.CreatedAt.UTC(),
		UpdatedAt:    user.UpdatedAt.UTC(),
	}
}

func toUserDomain(userM *model.UserModel) *entity.User {
	interests := userM.Interests
	if interests == nil {
		interests = []string{}
	}

	return &entity.User{
		ID:           userM.ID,
		Name:         userM.Name,
		Email:        userM.Email,
		PasswordHash: userM.PasswordHash,
		FieldOfStudy: userM.FieldOfStudy,
		Interests:    interests,
		IsActive:     userM.IsActive,
		CreatedAt:    userM.CreatedAt.UTC(),
		UpdatedAt:    userM.UpdatedAt.UTC(),
	}
}
