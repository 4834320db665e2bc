package mongo

import (
	"time"

	"portal/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// userDocument is the layout of a document in the "user" collection.
type userDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	FieldOfStudy *string            `bson:"field_of_study"`
	Interests    []string           `bson:"interests"`
	IsActive     bool               `bson:"is_active"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

// sessionDocument is the layout of a document in the "session" collection.
type sessionDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	UserID    string             `bson:"user_id"`
	Token     string             `bson:"token"`
	CreatedAt time.Time          `bson:"created_at"`
}

func fromUserDomain(user *entity.User, id primitive.ObjectID) *userDocument {
	interests := user.Interests
	if interests == nil {
		interests = []string{}
	}

	return &userDocument{
		ID:           id,
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

func toUserDomain(doc *userDocument) *entity.User {
	interests := doc.Interests
	if interests == nil {
		interests = []string{}
	}

	return &entity.User{
		ID:           doc.ID.Hex(),
		Name:         doc.Name,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		FieldOfStudy: doc.FieldOfStudy,
		Interests:    interests,
		IsActive:     doc.IsActive,
		CreatedAt:    doc.CreatedAt.UTC(),
		UpdatedAt:    doc.UpdatedAt.UTC(),
	}
}

func toSessionDomain(doc *sessionDocument) *entity.Session {
	return &entity.Session{
		ID:        doc.ID.Hex(),
		UserID:    doc.UserID,
		Token:     doc.Token,
		CreatedAt: doc.CreatedAt.UTC(),
	}
}
