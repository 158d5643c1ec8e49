package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/shadowflee/fluxer/internal/application/port"
	"github.com/shadowflee/fluxer/internal/logging"
)

// ErrClosed is returned by Handle.DB after Close.
var ErrClosed = errors.New("database closed")

var _ port.DatabaseProvider = (*Handle)(nil)

// Handle opens the store on first use. Commands that never read or write
// preferences never open the file.
//
// A failed open is remembered: later calls return the same error without
// retrying.
type Handle struct {
	path string

	mu      sync.Mutex
	db      *sql.DB
	openErr error
	closed  bool
}

// NewHandle returns a handle for the database at path.
func NewHandle(path string) *Handle {
	return &Handle{path: path}
}

// DB implements port.DatabaseProvider.
func (h *Handle) DB(ctx context.Context) (*sql.DB, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch {
	case h.closed:
		return nil, ErrClosed
	case h.openErr != nil:
		return nil, h.openErr
	case h.db != nil:
		return h.db, nil
	}

	log := logging.FromContext(ctx).With().Str("db", h.path).Logger()
	db, err := NewConnection(ctx, h.path)
	if err != nil {
		h.openErr = fmt.Errorf("open store: %w", err)
		log.Error().Err(err).Msg("store unavailable")
		return nil, h.openErr
	}
	log.Debug().Msg("store opened")
	h.db = db
	return db, nil
}

// Close implements port.DatabaseProvider.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	if h.db == nil {
		return nil
	}
	db := h.db
	h.db = nil
	return db.Close()
}

// IsInitialized implements port.DatabaseProvider.
func (h *Handle) IsInitialized() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.db != nil
}

// Path returns the database file path.
func (h *Handle) Path() string { return h.path }
