package sqlite_test

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowflee/fluxer/internal/infrastructure/persistence/sqlite"
)

func TestHandle_InitializesOnFirstAccess(t *testing.T) {
	ctx := testCtx()
	h := sqlite.NewHandle(filepath.Join(t.TempDir(), "fluxer.db"))
	assert.False(t, h.IsInitialized(), "nothing opened before DB")

	db, err := h.DB(ctx)
	require.NoError(t, err)
	require.NotNil(t, db)
	assert.True(t, h.IsInitialized())

	version, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	assert.Positive(t, version)

	require.NoError(t, h.Close())
}

func TestHandle_ConcurrentAccessSharesConnection(t *testing.T) {
	ctx := testCtx()
	h := sqlite.NewHandle(filepath.Join(t.TempDir(), "fluxer.db"))
	t.Cleanup(func() { _ = h.Close() })

	first, err := h.DB(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			db, err := h.DB(ctx)
			assert.NoError(t, err)
			assert.Same(t, first, db)
		}()
	}
	wg.Wait()
}

func TestHandle_FailureIsSticky(t *testing.T) {
	ctx := testCtx()
	h := sqlite.NewHandle("")

	_, first := h.DB(ctx)
	require.Error(t, first)
	_, second := h.DB(ctx)
	assert.Same(t, first, second)
	assert.False(t, h.IsInitialized())
	assert.NoError(t, h.Close())
}

func TestHandle_Path(t *testing.T) {
	h := sqlite.NewHandle("/some/path/to/fluxer.db")
	assert.Equal(t, "/some/path/to/fluxer.db", h.Path())
}

func TestHandle_ClosedRefusesAccess(t *testing.T) {
	ctx := testCtx()
	h := sqlite.NewHandle(filepath.Join(t.TempDir(), "fluxer.db"))

	_, err := h.DB(ctx)
	require.NoError(t, err)
	require.NoError(t, h.Close())
	require.NoError(t, h.Close(), "second close is a no-op")

	_, err = h.DB(ctx)
	assert.ErrorIs(t, err, sqlite.ErrClosed)
	assert.False(t, h.IsInitialized())
}

func TestHandle_CloseBeforeOpen(t *testing.T) {
	h := sqlite.NewHandle(filepath.Join(t.TempDir(), "fluxer.db"))
	require.NoError(t, h.Close())

	_, err := h.DB(testCtx())
	assert.ErrorIs(t, err, sqlite.ErrClosed)
}
