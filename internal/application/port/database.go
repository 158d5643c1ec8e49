// Package port defines interfaces for infrastructure adapters.
package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the shared store connection. The connection is
// opened and migrated on the first DB call.
type DatabaseProvider interface {
	DB(ctx context.Context) (*sql.DB, error)
	// Close is a no-op when nothing was opened.
	Close() error
	IsInitialized() bool
}
