package xdg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_DownloadDir(t *testing.T) {
	adapter := New()

	t.Run("returns XDG_DOWNLOAD_DIR when set", func(t *testing.T) {
		t.Setenv("XDG_DOWNLOAD_DIR", "/custom/downloads")

		dir, err := adapter.DownloadDir()

		require.NoError(t, err)
		assert.Equal(t, "/custom/downloads", dir)
	})

	t.Run("falls back to ~/Downloads when XDG_DOWNLOAD_DIR not set", func(t *testing.T) {
		t.Setenv("XDG_DOWNLOAD_DIR", "")

		dir, err := adapter.DownloadDir()
		require.NoError(t, err)

		home, err := os.UserHomeDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "Downloads"), dir)
	})
}

func TestAdapter_Dirs(t *testing.T) {
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "c"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "d"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "s"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "k"))

	adapter := New()
	tests := []struct {
		name string
		get  func() (string, error)
		want string
	}{
		{"config", adapter.ConfigDir, filepath.Join(root, "c", "fluxer")},
		{"data", adapter.DataDir, filepath.Join(root, "d", "fluxer")},
		{"state", adapter.StateDir, filepath.Join(root, "s", "fluxer")},
		{"cache", adapter.CacheDir, filepath.Join(root, "k", "fluxer")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.get()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
