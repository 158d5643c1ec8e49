package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorPage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "pages")

	u, err := WriteErrorPage(dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u, "file:///"))
	assert.True(t, strings.HasSuffix(u, "/pages/"+ErrorPageName))

	data, err := os.ReadFile(filepath.Join(dir, ErrorPageName))
	require.NoError(t, err)
	assert.Equal(t, ErrorPage, data)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ErrorPageName), []byte("stale"), 0o644))
	again, err := WriteErrorPage(dir)
	require.NoError(t, err)
	assert.Equal(t, u, again)

	data, err = os.ReadFile(filepath.Join(dir, ErrorPageName))
	require.NoError(t, err)
	assert.Equal(t, ErrorPage, data)
}

func TestEmbeddedAssets(t *testing.T) {
	assert.Contains(t, string(ErrorPage), "<html")
	assert.Contains(t, string(Icon), "<svg")
}
