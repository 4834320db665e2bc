package mongo

import (
	"context"

	"portal/internal/domain/entity"
	"portal/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
)

// userRepository implements repository.UserRepository on the "user" collection.
type userRepository struct {
	coll *driver.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *driver.Database) repository.UserRepository {
	return &userRepository{coll: db.Collection(userCollection)}
}

// FindByEmail retrieves a single user by exact email match.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"email": email}, "failed to find user by email")
}

// FindByID retrieves a single user by its ObjectID hex identity.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, bson.M{"_id": oid}, "failed to find user by id")
}

// Create inserts the user with a fresh ObjectID. The unique email index turns a lost
// check-then-insert race into ErrDuplicateEmail.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) (string, error) {
	doc := fromUserDomain(user, primitive.NewObjectID())

	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		if driver.IsDuplicateKeyError(err) {
			return "", repository.ErrDuplicateEmail
		}

		return "", errors.Wrap(err, "failed to insert user")
	}

	user.ID = doc.ID.Hex()

	return user.ID, nil
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.M, msg string) (*entity.User, error) {
	var doc userDocument
	if err := repo.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	return toUserDomain(&doc), nil
}
