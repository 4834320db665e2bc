// Command migrate applies the PostgreSQL schema migrations without starting the API.
package main

import (
	"context"
	"log/slog"
	"os"

	"portal/config"
	"portal/internal/domain/lifecycle"
	logs "portal/internal/infra/log"
	"portal/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	gormpg "gorm.io/driver/postgres"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	if cfg.Postgres == nil || cfg.Postgres.DSN == "" {
		return errors.New("postgres.dsn is not configured")
	}

	db, err := postgres.Open(gormpg.Open(cfg.Postgres.DSN), logger, cfg)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*lifecycle.DefaultTimeout)
	defer cancel()

	if err := postgres.Migrate(ctx, sqlDB); err != nil {
		return err
	}

	logger.Info("Migrations applied")

	return nil
}
