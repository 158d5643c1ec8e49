package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowflee/fluxer/internal/domain/entity"
	"github.com/shadowflee/fluxer/internal/infrastructure/persistence/sqlite"
	"github.com/shadowflee/fluxer/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.NewConnection(testCtx(), sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestNewConnection_EmptyPath(t *testing.T) {
	_, err := sqlite.NewConnection(testCtx(), "")
	require.Error(t, err)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := testCtx()
	db := openMemory(t)

	before, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	require.NoError(t, sqlite.RunMigrations(ctx, db))
	after, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestPreferenceRepository(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewPreferenceRepository(openMemory(t))

	_, ok, err := repo.Get(ctx, "server_url")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, "server_url", "https://chat.example.com"))
	require.NoError(t, repo.Set(ctx, "server_url", "https://other.example.com"))

	value, ok, err := repo.Get(ctx, "server_url")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "https://other.example.com", value)

	require.NoError(t, repo.Set(ctx, "notif_sound_uri", ""))
	value, ok, err = repo.Get(ctx, "notif_sound_uri")
	require.NoError(t, err)
	assert.True(t, ok, "empty values are stored")
	assert.Empty(t, value)

	require.NoError(t, repo.Delete(ctx, "server_url"))
	require.NoError(t, repo.Delete(ctx, "server_url"))
	_, ok, err = repo.Get(ctx, "server_url")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGrantRepository(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewGrantRepository(openMemory(t))

	got, err := repo.Get(ctx, entity.GrantCamera)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Set(ctx, &entity.GrantRecord{Grant: entity.GrantMicrophone, Granted: true}))
	require.NoError(t, repo.Set(ctx, &entity.GrantRecord{Grant: entity.GrantCamera, Granted: true}))
	require.NoError(t, repo.Set(ctx, &entity.GrantRecord{Grant: entity.GrantCamera, Granted: false}))
	require.Error(t, repo.Set(ctx, nil))

	mic, err := repo.Get(ctx, entity.GrantMicrophone)
	require.NoError(t, err)
	assert.True(t, mic.IsGranted())
	assert.Positive(t, mic.UpdatedAt)

	camera, err := repo.Get(ctx, entity.GrantCamera)
	require.NoError(t, err)
	assert.False(t, camera.IsGranted())

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, entity.GrantCamera, all[0].Grant)

	require.NoError(t, repo.Delete(ctx, entity.GrantCamera))
	camera, err = repo.Get(ctx, entity.GrantCamera)
	require.NoError(t, err)
	assert.Nil(t, camera)
}

func TestChannelRepository(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewChannelRepository(openMemory(t))

	require.NoError(t, repo.Save(ctx, &entity.NotificationChannel{
		ID: "fluxer", DisplayName: "Fluxer", CreatedAt: 100,
	}))
	require.NoError(t, repo.Save(ctx, &entity.NotificationChannel{
		ID: "fluxer_97", DisplayName: "Fluxer", SoundRef: "a", CreatedAt: 200,
	}))
	require.NoError(t, repo.Save(ctx, &entity.NotificationChannel{
		ID: "fluxer_bg", DisplayName: "Fluxer Background", Silent: true, CreatedAt: 300,
	}))

	// The sound of an existing channel cannot change.
	require.NoError(t, repo.Save(ctx, &entity.NotificationChannel{
		ID: "fluxer_97", DisplayName: "Renamed", SoundRef: "b",
	}))
	ch, err := repo.Get(ctx, "fluxer_97")
	require.NoError(t, err)
	require.NotNil(t, ch)
	assert.Equal(t, "a", ch.SoundRef)
	assert.Equal(t, "Renamed", ch.DisplayName)
	assert.Equal(t, int64(200), ch.CreatedAt)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"fluxer", "fluxer_97", "fluxer_bg"}, []string{list[0].ID, list[1].ID, list[2].ID})
	assert.True(t, list[2].Silent)

	require.NoError(t, repo.Delete(ctx, "fluxer_97"))
	missing, err := repo.Get(ctx, "fluxer_97")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
