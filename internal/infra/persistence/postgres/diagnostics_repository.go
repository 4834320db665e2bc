package postgres

import (
	"context"

	"portal/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type diagnosticsRepository struct {
	db *gorm.DB
}

// NewDiagnosticsRepository is the constructor for diagnosticsRepository.
func NewDiagnosticsRepository(db *gorm.DB) repository.DiagnosticsRepository {
	return &diagnosticsRepository{db: db}
}

func (repo *diagnosticsRepository) Name() string {
	return repo.db.Migrator().CurrentDatabase()
}

func (repo *diagnosticsRepository) Ping(ctx context.Context) error {
	sqlDB, err := repo.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return errors.Wrap(sqlDB.PingContext(ctx), "failed to ping PostgreSQL")
}

// ListCollections returns the table names of the current schema.
func (repo *diagnosticsRepository) ListCollections(ctx context.Context) ([]string, error) {
	tables, err := repo.db.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tables")
	}

	return tables, nil
}
