package download

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowflee/fluxer/internal/application/port"
)

type eventLog struct {
	mu     sync.Mutex
	events []port.DownloadEvent
}

func (l *eventLog) OnDownloadEvent(_ context.Context, event port.DownloadEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

func (l *eventLog) snapshot() []port.DownloadEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]port.DownloadEvent(nil), l.events...)
}

func newTestManager(t *testing.T, opts Options, handler port.DownloadEventHandler) *Manager {
	t.Helper()
	opts.RetryWaitMin = time.Millisecond
	opts.RetryWaitMax = 2 * time.Millisecond
	m := NewManager(context.Background(), opts, handler, nil)
	t.Cleanup(m.Close)
	return m
}

func TestManager_DownloadsToDirectory(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("hello"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	events := &eventLog{}
	m := newTestManager(t, Options{UserAgent: "fluxer-test"}, events)

	err := m.Enqueue(context.Background(), port.DownloadRequest{
		ID:        "d1",
		URL:       srv.URL + "/file.txt",
		Filename:  "file.txt",
		Directory: dir,
	})
	require.NoError(t, err)
	m.Wait()

	data, err := os.ReadFile(filepath.Join(dir, "file.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	assert.NoFileExists(t, filepath.Join(dir, "file.txt"+partSuffix))
	assert.Equal(t, "fluxer-test", gotAgent)

	got := events.snapshot()
	require.Len(t, got, 2)
	assert.Equal(t, port.DownloadEventStarted, got[0].Type)
	assert.Equal(t, port.DownloadEventFinished, got[1].Type)
	assert.Equal(t, filepath.Join(dir, "file.txt"), got[1].Destination)
	assert.NoError(t, got[1].Error)
}

func TestManager_RequestUserAgentWins(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	m := newTestManager(t, Options{UserAgent: "default"}, &eventLog{})
	require.NoError(t, m.Enqueue(context.Background(), port.DownloadRequest{
		URL:       srv.URL,
		Filename:  "x",
		Directory: t.TempDir(),
		UserAgent: "page-agent",
	}))
	m.Wait()

	assert.Equal(t, "page-agent", gotAgent)
}

func TestManager_ServerErrorFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	dir := t.TempDir()
	events := &eventLog{}
	m := newTestManager(t, Options{}, events)

	require.NoError(t, m.Enqueue(context.Background(), port.DownloadRequest{
		ID:        "d2",
		URL:       srv.URL,
		Filename:  "missing.bin",
		Directory: dir,
	}))
	m.Wait()

	got := events.snapshot()
	require.Len(t, got, 2)
	assert.Equal(t, port.DownloadEventFailed, got[1].Type)
	assert.Error(t, got[1].Error)
	assert.NoFileExists(t, filepath.Join(dir, "missing.bin"))
	assert.NoFileExists(t, filepath.Join(dir, "missing.bin"+partSuffix))
}

func TestManager_RetriesServerErrors(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	events := &eventLog{}
	m := newTestManager(t, Options{RetryMax: 2}, events)
	require.NoError(t, m.Enqueue(context.Background(), port.DownloadRequest{
		URL:       srv.URL,
		Filename:  "retry.txt",
		Directory: t.TempDir(),
	}))
	m.Wait()

	got := events.snapshot()
	require.Len(t, got, 2)
	assert.Equal(t, port.DownloadEventFinished, got[1].Type)
	assert.Equal(t, 2, calls)
}

func TestManager_RejectsBadRequests(t *testing.T) {
	m := newTestManager(t, Options{}, nil)
	ctx := context.Background()

	assert.Error(t, m.Enqueue(ctx, port.DownloadRequest{Filename: "a", Directory: "/tmp"}))
	assert.Error(t, m.Enqueue(ctx, port.DownloadRequest{URL: "http://x", Directory: "/tmp"}))
	assert.Error(t, m.Enqueue(ctx, port.DownloadRequest{URL: "http://x", Filename: "../a", Directory: "/tmp"}))
}

func TestManager_EnqueueAfterClose(t *testing.T) {
	m := NewManager(context.Background(), Options{}, nil, nil)
	m.Close()
	m.Close()

	err := m.Enqueue(context.Background(), port.DownloadRequest{URL: "http://x", Filename: "a", Directory: "/tmp"})
	assert.ErrorIs(t, err, ErrClosed)
}
