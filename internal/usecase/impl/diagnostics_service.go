package impl

import (
	"context"
	"log/slog"

	"portal/config"
	"portal/internal/domain/repository"
	"portal/internal/usecase"

	"go.uber.org/fx"
)

const (
	maxReportedCollections = 10
	maxReportedErrorLength = 50
)

type diagnosticsService struct {
	repo   repository.DiagnosticsRepository
	cfg    *config.Config
	logger *slog.Logger
}

// DiagnosticsServiceParams holds dependencies for DiagnosticsService, injected by Fx.
type DiagnosticsServiceParams struct {
	fx.In

	Repo   repository.DiagnosticsRepository `optional:"true"`
	Config *config.Config
	Logger *slog.Logger
}

// NewDiagnosticsService is the constructor for diagnosticsService.
func NewDiagnosticsService(params DiagnosticsServiceParams) usecase.DiagnosticsUsecase {
	return &diagnosticsService{
		repo:   params.Repo,
		cfg:    params.Config,
		logger: params.Logger,
	}
}

// Report pings the store and lists up to ten of its collections.
func (srv *diagnosticsService) Report(ctx context.Context) *usecase.DiagnosticsReport {
	report := &usecase.DiagnosticsReport{
		Backend:          "running",
		DatabaseStatus:   "not available",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if srv.cfg != nil {
		report.Store = srv.cfg.Store.Driver
		report.DatabaseURLSet = srv.cfg.LegacyEnv.DatabaseURLSet
		report.DatabaseNameSet = srv.cfg.LegacyEnv.DatabaseNameSet
	}

	if srv.repo == nil {
		return report
	}

	report.DatabaseName = srv.repo.Name()

	if err := srv.repo.Ping(ctx); err != nil {
		srv.logger.Warn("Diagnostics ping failed", slog.Any("error", err))
		report.DatabaseStatus = "error"
		report.Error = truncate(err.Error(), maxReportedErrorLength)

		return report
	}
	report.ConnectionStatus = "connected"

	collections, err := srv.repo.ListCollections(ctx)
	if err != nil {
		srv.logger.Warn("Diagnostics collection listing failed", slog.Any("error", err))
		report.DatabaseStatus = "connected with errors"
		report.Error = truncate(err.Error(), maxReportedErrorLength)

		return report
	}

	if len(collections) > maxReportedCollections {
		collections = collections[:maxReportedCollections]
	}
	report.Collections = collections
	report.DatabaseStatus = "connected"

	return report
}

// truncate keeps the first n characters of s without splitting a multi-byte rune.
func truncate(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}

	return s
}
