package impl

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"portal/config"
	mockRepo "portal/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDiagnosticsConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Store.Driver = config.DriverMongo
	cfg.Mongo = &config.MongoConfig{URI: "mongodb://localhost:27017", Database: "portal"}
	cfg.LegacyEnv = config.LegacyEnv{DatabaseURLSet: true, DatabaseNameSet: true}

	return cfg
}

func TestDiagnosticsService_Report_Connected(t *testing.T) {
	repo := mockRepo.NewMockDiagnosticsRepository(t)
	svc := NewDiagnosticsService(DiagnosticsServiceParams{Repo: repo, Config: newDiagnosticsConfig(), Logger: newDiscardLogger()})

	collections := make([]string, 0, 12)
	for i := range 12 {
		collections = append(collections, "c"+strconv.Itoa(i))
	}

	repo.EXPECT().Name().Return("portal")
	repo.EXPECT().Ping(mock.Anything).Return(nil)
	repo.EXPECT().ListCollections(mock.Anything).Return(collections, nil)

	report := svc.Report(context.Background())

	assert.Equal(t, "running", report.Backend)
	assert.Equal(t, "mongo", report.Store)
	assert.Equal(t, "connected", report.DatabaseStatus)
	assert.Equal(t, "connected", report.ConnectionStatus)
	assert.Equal(t, "portal", report.DatabaseName)
	assert.True(t, report.DatabaseURLSet)
	assert.True(t, report.DatabaseNameSet)
	assert.Equal(t, collections[:10], report.Collections)
	assert.Empty(t, report.Error)
}

func TestDiagnosticsService_Report_PingFails(t *testing.T) {
	repo := mockRepo.NewMockDiagnosticsRepository(t)
	svc := NewDiagnosticsService(DiagnosticsServiceParams{Repo: repo, Config: newDiagnosticsConfig(), Logger: newDiscardLogger()})

	repo.EXPECT().Name().Return("portal")
	repo.EXPECT().Ping(mock.Anything).Return(errors.New(strings.Repeat("x", 80)))

	report := svc.Report(context.Background())

	assert.Equal(t, "error", report.DatabaseStatus)
	assert.Equal(t, "not connected", report.ConnectionStatus)
	assert.Len(t, report.Error, 50)
	assert.Empty(t, report.Collections)
	repo.AssertNotCalled(t, "ListCollections", mock.Anything)
}

func TestDiagnosticsService_Report_ListFails(t *testing.T) {
	repo := mockRepo.NewMockDiagnosticsRepository(t)
	svc := NewDiagnosticsService(DiagnosticsServiceParams{Repo: repo, Config: newDiagnosticsConfig(), Logger: newDiscardLogger()})

	repo.EXPECT().Name().Return("portal")
	repo.EXPECT().Ping(mock.Anything).Return(nil)
	repo.EXPECT().ListCollections(mock.Anything).Return(nil, errors.New("unauthorized"))

	report := svc.Report(context.Background())

	assert.Equal(t, "connected with errors", report.DatabaseStatus)
	assert.Equal(t, "connected", report.ConnectionStatus)
	assert.Equal(t, "unauthorized", report.Error)
}

func TestDiagnosticsService_Report_NoStore(t *testing.T) {
	cfg := newDiagnosticsConfig()
	cfg.LegacyEnv.DatabaseNameSet = false
	svc := NewDiagnosticsService(DiagnosticsServiceParams{Config: cfg, Logger: newDiscardLogger()})

	report := svc.Report(context.Background())

	assert.Equal(t, "not available", report.DatabaseStatus)
	assert.True(t, report.DatabaseURLSet)
	assert.False(t, report.DatabaseNameSet)
	assert.Equal(t, []string{}, report.Collections)
}

func TestDiagnosticsService_Report_FlagsFollowEnvironmentOnly(t *testing.T) {
	cfg := newDiagnosticsConfig()
	cfg.LegacyEnv = config.LegacyEnv{}
	svc := NewDiagnosticsService(DiagnosticsServiceParams{Config: cfg, Logger: newDiscardLogger()})

	report := svc.Report(context.Background())

	// URI and database come from config.yaml defaults here.
	assert.False(t, report.DatabaseURLSet)
	assert.False(t, report.DatabaseNameSet)
}

func TestDiagnosticsService_Report_TruncatesMultiByteError(t *testing.T) {
	repo := mockRepo.NewMockDiagnosticsRepository(t)
	svc := NewDiagnosticsService(DiagnosticsServiceParams{Repo: repo, Config: newDiagnosticsConfig(), Logger: newDiscardLogger()})

	repo.EXPECT().Name().Return("portal")
	repo.EXPECT().Ping(mock.Anything).Return(errors.New("x" + strings.Repeat("é", 80)))

	report := svc.Report(context.Background())

	assert.True(t, utf8.ValidString(report.Error))
	assert.Equal(t, 50, utf8.RuneCountInString(report.Error))
	assert.Equal(t, "x"+strings.Repeat("é", 49), report.Error)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "shorter", in: "abc", n: 5, want: "abc"},
		{name: "exact", in: "abcde", n: 5, want: "abcde"},
		{name: "ascii", in: "abcdef", n: 3, want: "abc"},
		{name: "multi-byte", in: "日本語テキスト", n: 3, want: "日本語"},
		{name: "empty", in: "", n: 3, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.in, tt.n))
		})
	}
}
