package mongo

import (
	"context"

	"portal/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type diagnosticsRepository struct {
	db *driver.Database
}

// NewDiagnosticsRepository is the constructor for diagnosticsRepository.
func NewDiagnosticsRepository(db *driver.Database) repository.DiagnosticsRepository {
	return &diagnosticsRepository{db: db}
}

func (repo *diagnosticsRepository) Name() string {
	return repo.db.Name()
}

func (repo *diagnosticsRepository) Ping(ctx context.Context) error {
	return errors.Wrap(repo.db.Client().Ping(ctx, readpref.Primary()), "failed to ping MongoDB")
}

func (repo *diagnosticsRepository) ListCollections(ctx context.Context) ([]string, error) {
	names, err := repo.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list collections")
	}

	return names, nil
}
