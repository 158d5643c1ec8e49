// Package download fetches files requested by the page in the background.
package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"

	"github.com/shadowflee/fluxer/internal/application/port"
	"github.com/shadowflee/fluxer/internal/logging"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	partSuffix = ".part"
)

// ErrClosed is returned by Enqueue after Close.
var ErrClosed = errors.New("download manager closed")

// Options configures a Manager.
type Options struct {
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	// UserAgent is used when a request carries none.
	UserAgent string
	// HTTPClient replaces the underlying client, mostly for tests.
	HTTPClient *http.Client
}

var _ port.Downloader = (*Manager)(nil)

// Manager runs each download in its own goroutine and reports progress to
// the event handler. Events are delivered through post so the handler runs
// on the main loop.
type Manager struct {
	client  *retryablehttp.Client
	handler port.DownloadEventHandler
	post    func(func())
	agent   string

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewManager creates a download manager. ctx bounds every transfer.
func NewManager(ctx context.Context, opts Options, handler port.DownloadEventHandler, post func(func())) *Manager {
	client := retryablehttp.NewClient()
	client.RetryMax = opts.RetryMax
	if opts.RetryWaitMin > 0 {
		client.RetryWaitMin = opts.RetryWaitMin
	}
	if opts.RetryWaitMax > 0 {
		client.RetryWaitMax = opts.RetryWaitMax
	}
	if opts.HTTPClient != nil {
		client.HTTPClient = opts.HTTPClient
	}
	client.Logger = leveledLogger{log: logging.FromContext(ctx).With().Str("component", "download").Logger()}

	if post == nil {
		post = func(fn func()) { fn() }
	}

	mctx, cancel := context.WithCancel(ctx)
	return &Manager{
		client:  client,
		handler: handler,
		post:    post,
		agent:   opts.UserAgent,
		ctx:     mctx,
		cancel:  cancel,
	}
}

// Enqueue implements port.Downloader.
func (m *Manager) Enqueue(ctx context.Context, req port.DownloadRequest) error {
	if req.URL == "" || req.Filename == "" || req.Directory == "" {
		return fmt.Errorf("incomplete download request %q", req.ID)
	}
	if filepath.Base(req.Filename) != req.Filename {
		return fmt.Errorf("download filename %q is not a base name", req.Filename)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer logging.RecoverTask(logging.FromContext(ctx), "download")
		m.run(ctx, req)
	}()
	return nil
}

func (m *Manager) run(ctx context.Context, req port.DownloadRequest) {
	dest := filepath.Join(req.Directory, req.Filename)
	m.emit(ctx, port.DownloadEvent{
		Type:        port.DownloadEventStarted,
		ID:          req.ID,
		Filename:    req.Filename,
		Destination: dest,
	})

	err := m.fetch(req, dest)
	event := port.DownloadEvent{
		Type:        port.DownloadEventFinished,
		ID:          req.ID,
		Filename:    req.Filename,
		Destination: dest,
	}
	if err != nil {
		event.Type = port.DownloadEventFailed
		event.Error = err
	}
	m.emit(ctx, event)
}

func (m *Manager) fetch(req port.DownloadRequest, dest string) error {
	httpReq, err := retryablehttp.NewRequestWithContext(m.ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	agent := req.UserAgent
	if agent == "" {
		agent = m.agent
	}
	if agent != "" {
		httpReq.Header.Set("User-Agent", agent)
	}

	resp, err := m.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", req.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("fetch %s: unexpected status %s", req.URL, resp.Status)
	}

	if err := os.MkdirAll(req.Directory, dirPerm); err != nil {
		return fmt.Errorf("create download directory: %w", err)
	}

	part := dest + partSuffix
	f, err := os.OpenFile(part, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("create %s: %w", part, err)
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		_ = f.Close()
		_ = os.Remove(part)
		return fmt.Errorf("write %s: %w", part, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(part)
		return fmt.Errorf("close %s: %w", part, err)
	}
	if err := os.Rename(part, dest); err != nil {
		_ = os.Remove(part)
		return fmt.Errorf("move download into place: %w", err)
	}
	return nil
}

func (m *Manager) emit(ctx context.Context, event port.DownloadEvent) {
	if m.handler == nil {
		return
	}
	m.post(func() { m.handler.OnDownloadEvent(ctx, event) })
}

// Close cancels running transfers and waits for them to report.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	m.mu.Unlock()

	m.cancel()
	m.wg.Wait()
}

// Wait blocks until every enqueued transfer has reported.
func (m *Manager) Wait() {
	m.wg.Wait()
}

// leveledLogger routes retryablehttp logs to zerolog.
type leveledLogger struct {
	log zerolog.Logger
}

func (l leveledLogger) Error(msg string, kv ...any) { l.log.Error().Fields(kv).Msg(msg) }
func (l leveledLogger) Info(msg string, kv ...any)  { l.log.Debug().Fields(kv).Msg(msg) }
func (l leveledLogger) Debug(msg string, kv ...any) { l.log.Trace().Fields(kv).Msg(msg) }
func (l leveledLogger) Warn(msg string, kv ...any)  { l.log.Warn().Fields(kv).Msg(msg) }
