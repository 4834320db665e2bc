package repository

import "context"

// DiagnosticsRepository reports on the health of the backing store.
type DiagnosticsRepository interface {
	// Name returns the database name the store is bound to.
	Name() string

	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error

	// ListCollections returns the collection (or table) names in the database.
	ListCollections(ctx context.Context) ([]string, error)
}
