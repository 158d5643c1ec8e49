package usecase

import (
	"context"
	"fmt"

	"github.com/shadowflee/fluxer/internal/logging"
)

// PipScript returns the script telling the page it entered or left the
// floating call window.
func PipScript(inPip bool) string {
	flag := "false"
	if inPip {
		flag = "true"
	}
	return "if (typeof window.__fluxerOnPipChanged === 'function') " +
		"window.__fluxerOnPipChanged(" + flag + ");"
}

// Shell owns the current session and replaces it when the server changes.
// All methods run on the main loop.
type Shell struct {
	cfg       SessionConfig
	deps      SessionDeps
	configure *ConfigureServerUseCase
	post      func(func())
	coalesce  func(key string, fn func())

	session   *Session
	onSession []func(ctx context.Context, s *Session)
}

// NewShell creates a shell. cfg.ServerURL is ignored; the stored address is
// used instead.
func NewShell(
	cfg SessionConfig,
	deps SessionDeps,
	post func(func()),
	coalesce func(key string, fn func()),
) *Shell {
	return &Shell{
		cfg:       cfg,
		deps:      deps,
		configure: NewConfigureServerUseCase(deps.Prefs),
		post:      post,
		coalesce:  coalesce,
	}
}

// OnSession registers fn to run every time a new session starts, so that
// adapters can rebind to it.
func (sh *Shell) OnSession(fn func(ctx context.Context, s *Session)) {
	if fn != nil {
		sh.onSession = append(sh.onSession, fn)
	}
}

// Session returns the running session, or nil before setup completed.
func (sh *Shell) Session() *Session {
	return sh.session
}

// Start loads the stored server and starts a session for it. Without a
// usable address the setup screen is shown and the session starts once the
// user saves one.
func (sh *Shell) Start(ctx context.Context) error {
	serverURL, err := sh.configure.Load(ctx)
	if err != nil {
		return err
	}
	if serverURL == "" {
		logging.FromContext(ctx).Info().Str("component", "shell").Msg("no server configured, opening setup")
		sh.openSetup(ctx, "")
		return nil
	}
	return sh.startSession(ctx, serverURL)
}

// Reconfigure stores a new server address and replaces the running session.
// The old session is closed before the new one starts.
func (sh *Shell) Reconfigure(ctx context.Context, raw string) error {
	serverURL, err := sh.configure.Save(ctx, raw)
	if err != nil {
		return err
	}
	if sh.session != nil {
		sh.session.Close(ctx)
		sh.session = nil
	}
	return sh.startSession(ctx, serverURL)
}

// OnUserLeaveHint reports whether the window should shrink into a floating
// call window as the user leaves the app.
func (sh *Shell) OnUserLeaveHint() bool {
	return sh.session != nil && sh.session.Calls.ShouldAutoMinimize()
}

// OnPictureInPictureChanged tells the page whether it is shown floating.
func (sh *Shell) OnPictureInPictureChanged(ctx context.Context, inPip bool) {
	if sh.session == nil || sh.session.Closed() {
		return
	}
	sh.deps.Surface.EvaluateScript(ctx, PipScript(inPip))
}

// Close tears down the running session.
func (sh *Shell) Close(ctx context.Context) {
	if sh.session == nil {
		return
	}
	sh.session.Close(ctx)
	sh.session = nil
}

func (sh *Shell) startSession(ctx context.Context, serverURL string) error {
	cfg := sh.cfg
	cfg.ServerURL = serverURL

	s, err := NewSession(ctx, cfg, sh.deps, sh.post, sh.coalesce)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	s.Bridge.OnServerChanged(func(ctx context.Context, serverURL string) {
		if err := sh.Reconfigure(ctx, serverURL); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Str("component", "shell").Msg("failed to switch server")
		}
	})
	sh.session = s

	ctx = logging.WithSessionID(ctx, s.ID)
	if err := s.Start(ctx); err != nil {
		return err
	}
	for _, fn := range sh.onSession {
		fn(ctx, s)
	}
	return nil
}

func (sh *Shell) openSetup(ctx context.Context, current string) {
	if sh.deps.Setup == nil {
		return
	}
	sh.deps.Setup.OpenSetup(ctx, current, func(serverURL string, ok bool) {
		if !ok {
			return
		}
		run := func() {
			if err := sh.Reconfigure(ctx, serverURL); err != nil {
				logging.FromContext(ctx).Warn().Err(err).Str("component", "shell").Msg("setup produced an unusable server")
			}
		}
		if sh.post != nil {
			sh.post(run)
			return
		}
		run()
	})
}
