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

// sessionRepository implements repository.SessionRepository on the "session" collection.
type sessionRepository struct {
	coll *driver.Collection
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *driver.Database) repository.SessionRepository {
	return &sessionRepository{coll: db.Collection(sessionCollection)}
}

// Create inserts the session document.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	doc := &sessionDocument{
		ID:        primitive.NewObjectID(),
		UserID:    session.UserID,
		Token:     session.Token,
		CreatedAt: session.CreatedAt.UTC(),
	}

	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to insert session")
	}

	session.ID = doc.ID.Hex()

	return nil
}

// FindByToken retrieves the session holding token.
func (repo *sessionRepository) FindByToken(ctx context.Context, token string) (*entity.Session, error) {
	var doc sessionDocument
	if err := repo.coll.FindOne(ctx, bson.M{"token": token}).Decode(&doc); err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by token")
	}

	return toSessionDomain(&doc), nil
}
