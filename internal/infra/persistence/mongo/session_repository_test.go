package mongo

import (
	"context"
	"testing"
	"time"

	"portal/internal/domain/entity"
	"portal/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestSessionRepository_Create(t *testing.T) {
	mt := newMockT(t)

	mt.Run("success", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		repo := NewSessionRepository(mt.DB)
		session := &entity.Session{UserID: primitive.NewObjectID().Hex(), Token: "tok", CreatedAt: time.Now()}

		require.NoError(mt, repo.Create(context.Background(), session))
		assert.NotEmpty(mt, session.ID)
	})

	mt.Run("failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 91, Message: "shutting down"}))

		repo := NewSessionRepository(mt.DB)
		err := repo.Create(context.Background(), &entity.Session{UserID: "u", Token: "tok"})

		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "failed to insert session")
	})
}

func TestSessionRepository_FindByToken(t *testing.T) {
	mt := newMockT(t)

	mt.Run("found", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "portal.session", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "user_id", Value: "663211aa"},
			{Key: "token", Value: "tok"},
			{Key: "created_at", Value: created},
		}))

		repo := NewSessionRepository(mt.DB)
		session, err := repo.FindByToken(context.Background(), "tok")

		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), session.ID)
		assert.Equal(mt, "663211aa", session.UserID)
		assert.Equal(mt, "tok", session.Token)
		assert.True(mt, created.Equal(session.CreatedAt))
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "portal.session", mtest.FirstBatch))

		repo := NewSessionRepository(mt.DB)
		_, err := repo.FindByToken(context.Background(), "missing")

		assert.ErrorIs(mt, err, repository.ErrSessionNotFound)
	})
}

func TestDiagnosticsRepository_ListCollections(t *testing.T) {
	mt := newMockT(t)

	mt.Run("lists names", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "portal.$cmd.listCollections", mtest.FirstBatch,
			bson.D{{Key: "name", Value: "user"}, {Key: "type", Value: "collection"}},
			bson.D{{Key: "name", Value: "session"}, {Key: "type", Value: "collection"}},
		))

		repo := NewDiagnosticsRepository(mt.DB)
		names, err := repo.ListCollections(context.Background())

		require.NoError(mt, err)
		assert.ElementsMatch(mt, []string{"user", "session"}, names)
		assert.Equal(mt, mt.DB.Name(), repo.Name())
	})
}
