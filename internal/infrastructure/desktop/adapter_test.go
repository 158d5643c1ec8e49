package desktop

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowflee/fluxer/internal/application/port"
)

type commandLog struct {
	calls  [][]string
	output map[string]string
}

func (c *commandLog) run(_ context.Context, name string, args ...string) ([]byte, error) {
	call := append([]string{name}, args...)
	c.calls = append(c.calls, call)
	return []byte(c.output[strings.Join(args, " ")]), nil
}

func newTestAdapter(t *testing.T) (*Adapter, *commandLog) {
	t.Helper()
	log := &commandLog{output: map[string]string{}}
	return &Adapter{
		scheme:      "fluxer",
		dataHome:    t.TempDir(),
		xdgMimePath: "xdg-mime",
		run:         log.run,
	}, log
}

func TestAdapter_InstallWritesSchemeHandlerEntry(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestAdapter(t)

	path, err := a.InstallDesktopFile(ctx)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(a.dataHome, "applications", "fluxer.desktop"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "MimeType=x-scheme-handler/fluxer;")
	assert.Contains(t, string(content), " open %u")
	assert.FileExists(t, filepath.Join(a.dataHome, "icons", "hicolor", "scalable", "apps", "fluxer.svg"))

	status, err := a.GetStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.DesktopFileInstalled)
	assert.False(t, status.IsSchemeHandler)
}

func TestAdapter_RegisterSchemeHandler(t *testing.T) {
	ctx := context.Background()
	a, log := newTestAdapter(t)

	require.Error(t, a.RegisterSchemeHandler(ctx), "desktop file must exist first")

	_, err := a.InstallDesktopFile(ctx)
	require.NoError(t, err)
	require.NoError(t, a.RegisterSchemeHandler(ctx))
	assert.Equal(t, []string{"xdg-mime", "default", "fluxer.desktop", "x-scheme-handler/fluxer"}, log.calls[len(log.calls)-1])

	log.output["query default x-scheme-handler/fluxer"] = "fluxer.desktop\n"
	status, err := a.GetStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.IsSchemeHandler)
}

func TestAdapter_RemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestAdapter(t)

	path, err := a.InstallDesktopFile(ctx)
	require.NoError(t, err)
	require.NoError(t, a.RemoveDesktopFile(ctx))
	require.NoError(t, a.RemoveDesktopFile(ctx))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.NoFileExists(t, filepath.Join(a.dataHome, "icons", "hicolor", "scalable", "apps", "fluxer.svg"))
}

func TestOpener(t *testing.T) {
	ctx := context.Background()
	var started []string
	o := &Opener{command: "xdg-open", start: func(name string, args ...string) (int, error) {
		started = append(append(started, name), args...)
		return 42, nil
	}}

	require.NoError(t, o.Open(ctx, "https://elsewhere.example.org/a"))
	assert.Equal(t, []string{"xdg-open", "https://elsewhere.example.org/a"}, started)

	failing := &Opener{command: "xdg-open", start: func(string, ...string) (int, error) {
		return 0, errors.New("not found")
	}}
	require.Error(t, failing.Open(ctx, "mailto:a@b.c"))

	assert.ErrorIs(t, o.OpenChannelSettings(ctx, "fluxer"), port.ErrUnsupported)
}
