package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/shadowflee/fluxer/internal/application/port"
	"github.com/shadowflee/fluxer/internal/domain/entity"
	"github.com/shadowflee/fluxer/internal/domain/repository"
	"github.com/shadowflee/fluxer/internal/domain/url"
	"github.com/shadowflee/fluxer/internal/logging"
)

// ErrSessionClosed is returned by operations on a session that was torn down.
var ErrSessionClosed = errors.New("session closed")

// SessionConfig holds the settings a session is built from.
type SessionConfig struct {
	ServerURL          string
	FallbackPage       string
	DeepLinkScheme     string
	ShareTextLimit     int
	ChannelDisplayName string
	DownloadDir        string
}

// SessionDeps are the platform adapters a session drives.
// Surface, Dialog, Checker, Registry and Prefs are required.
type SessionDeps struct {
	Surface   port.ContentSurface
	Dialog    port.PermissionDialog
	Checker   port.GrantChecker
	Prompter  port.TrustPrompter
	Opener    port.ExternalOpener
	Notifier  port.SystemNotifier
	Registry  port.ChannelRegistry
	Prefs     repository.PreferenceRepository
	Toaster   port.Toaster
	Inhibitor port.IdleInhibitor

	Settings   port.SettingsOpener
	Sounds     port.SoundPicker
	Setup      port.SetupLauncher
	Files      port.FilePicker
	Downloader port.Downloader
	FileSystem port.FileSystem
}

func (d SessionDeps) validate() error {
	switch {
	case d.Surface == nil:
		return errors.New("session: surface is required")
	case d.Dialog == nil:
		return errors.New("session: permission dialog is required")
	case d.Checker == nil:
		return errors.New("session: grant checker is required")
	case d.Registry == nil:
		return errors.New("session: channel registry is required")
	case d.Prefs == nil:
		return errors.New("session: preferences are required")
	}
	return nil
}

// NotificationIDSource hands out positive notification ids.
type NotificationIDSource struct {
	next atomic.Int32
}

// Next returns the next id. Ids wrap but stay non-negative.
func (s *NotificationIDSource) Next() int32 {
	return s.next.Add(1) & 0x7FFFFFFF
}

// Session is everything that exists for one configured server. It is built
// once per server address and torn down with Close when the address changes.
type Session struct {
	ID        string
	ServerURL string
	Trusted   entity.Origin

	Permissions  *PermissionBroker
	Trust        *TrustExceptionGate
	Navigation   *NavigationGate
	Channels     *ChannelIdentity
	Calls        *CallStateTracker
	Intents      *IntentHandler
	Connectivity *ConnectivityMonitor
	Downloads    *HandleDownloadUseCase
	Files        *FileChooser
	Bridge       *Bridge

	NotificationIDs NotificationIDSource

	deps   SessionDeps
	closed atomic.Bool
}

// NewSession builds a session for cfg.ServerURL. post runs work on the main
// loop; coalesce does the same while merging bursts under one key.
func NewSession(
	ctx context.Context,
	cfg SessionConfig,
	deps SessionDeps,
	post func(func()),
	coalesce func(key string, fn func()),
) (*Session, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	trusted, err := url.ParseOrigin(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidServerURL, err)
	}
	if !trusted.IsWeb() {
		return nil, fmt.Errorf("%w: scheme %q", ErrInvalidServerURL, trusted.Scheme)
	}
	if post == nil {
		post = func(fn func()) { fn() }
	}

	s := &Session{
		ID:        logging.GenerateSessionID(),
		ServerURL: cfg.ServerURL,
		Trusted:   trusted,
		deps:      deps,
	}

	s.Permissions = NewPermissionBroker(trusted, deps.Checker, deps.Dialog, post)
	s.Trust = NewTrustExceptionGate(trusted.Host, deps.Prompter)
	s.Navigation = NewNavigationGate(trusted, cfg.FallbackPage, deps.Surface, deps.Opener)
	s.Channels = NewChannelIdentity(deps.Registry, deps.Prefs, deps.Toaster, cfg.ChannelDisplayName)
	s.Calls = NewCallStateTracker()
	s.Intents = NewIntentHandler(cfg.ServerURL, cfg.DeepLinkScheme, cfg.ShareTextLimit, deps.Surface)
	s.Connectivity = NewConnectivityMonitor(cfg.ServerURL, cfg.FallbackPage, deps.Surface, deps.Toaster, coalesce)
	if deps.Downloader != nil {
		s.Downloads = NewHandleDownloadUseCase(deps.Downloader, deps.FileSystem, deps.Toaster, cfg.DownloadDir)
	}
	if deps.Files != nil {
		s.Files = NewFileChooser(deps.Files)
	}
	s.Bridge = NewBridge(s, post)

	s.Navigation.OnTrustedLanding(s.Intents.DeliverPendingShare)
	if deps.Inhibitor != nil {
		s.Calls.Subscribe(KeepAwakeObserver(deps.Inhibitor))
	}

	logging.FromContext(ctx).Debug().
		Str("component", "session").
		Str("session_id", s.ID).
		Str("origin", trusted.String()).
		Msg("session created")
	return s, nil
}

// Start prepares notification channels and loads the server.
func (s *Session) Start(ctx context.Context) error {
	if s.closed.Load() {
		return ErrSessionClosed
	}
	log := logging.FromContext(ctx).With().Str("component", "session").Logger()

	if _, err := s.Channels.Activate(ctx); err != nil {
		log.Warn().Err(err).Msg("notification channel unavailable")
	}
	if err := s.Channels.EnsureBackgroundChannel(ctx); err != nil {
		log.Warn().Err(err).Msg("background channel unavailable")
	}

	s.deps.Surface.LoadURL(ctx, s.ServerURL)
	log.Info().Str("url", s.ServerURL).Msg("session started")
	return nil
}

// Closed reports whether Close was called.
func (s *Session) Closed() bool {
	return s.closed.Load()
}

// Close tears the session down: queued capability requests are denied, the
// bridge is hidden, an open file chooser is cancelled and any call ends.
func (s *Session) Close(ctx context.Context) {
	if s.closed.Swap(true) {
		return
	}
	s.Permissions.Close(ctx)
	s.Navigation.Reset()
	if s.Files != nil {
		s.Files.Cancel()
	}
	s.Calls.EndCall(ctx)

	logging.FromContext(ctx).Debug().
		Str("component", "session").
		Str("session_id", s.ID).
		Msg("session closed")
}
