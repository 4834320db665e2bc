package usecase

import "context"

// DiagnosticsReport describes the state of the backing store.
type DiagnosticsReport struct {
	Backend          string   `json:"backend"`
	Store            string   `json:"store"`
	DatabaseStatus   string   `json:"database_status"`
	DatabaseURLSet   bool     `json:"database_url_set"`
	DatabaseNameSet  bool     `json:"database_name_set"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
	Error            string   `json:"error,omitempty"`
}

// DiagnosticsUsecase reports store connectivity. It never fails; problems are
// described in the report.
type DiagnosticsUsecase interface {
	Report(ctx context.Context) *DiagnosticsReport
}
