package cli

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/shadowflee/fluxer/internal/application/port"
	"github.com/shadowflee/fluxer/internal/application/usecase"
	"github.com/shadowflee/fluxer/internal/cli/styles"
	"github.com/shadowflee/fluxer/internal/infrastructure/config"
	"github.com/shadowflee/fluxer/internal/infrastructure/desktop"
	"github.com/shadowflee/fluxer/internal/infrastructure/download"
	"github.com/shadowflee/fluxer/internal/infrastructure/filesystem"
	"github.com/shadowflee/fluxer/internal/infrastructure/grants"
	"github.com/shadowflee/fluxer/internal/infrastructure/idle"
	"github.com/shadowflee/fluxer/internal/infrastructure/notify"
	"github.com/shadowflee/fluxer/internal/logging"
	"github.com/shadowflee/fluxer/internal/mainloop"
)

// HarnessOptions configures a Harness.
type HarnessOptions struct {
	Session usecase.SessionConfig
	Repos   Repositories

	Dialog   port.PermissionDialog
	Prompter port.TrustPrompter
	// Opener receives links leaving the trusted origin. Nil prints them.
	Opener port.ExternalOpener

	// Setup, Sounds and Files answer the setup screen, the sound picker and
	// page file inputs. Nil dismisses them and prints that it did.
	Setup  port.SetupLauncher
	Sounds port.SoundPicker
	Files  port.FilePicker

	Notifications config.NotificationsConfig
	Downloads     config.DownloadsConfig

	Out   io.Writer
	Theme *styles.Theme

	// NoBus keeps the harness off D-Bus: notifications and toasts are
	// printed and nothing keeps the screen awake.
	NoBus bool
}

// Harness is a shell with terminal adapters around it and the main loop it
// runs on.
type Harness struct {
	Loop      *mainloop.Loop
	Coalescer *mainloop.Coalescer
	Shell     *usecase.Shell
	Surface   *RecordingSurface
	Grants    *grants.Store
	Registry  *notify.Registry
	Downloads *download.Manager

	closers []io.Closer
	once    sync.Once
}

// NewHarness builds the shell. Nothing runs until Start.
func NewHarness(ctx context.Context, opts HarnessOptions) (*Harness, error) {
	if opts.Repos.Prefs == nil || opts.Repos.Grants == nil || opts.Repos.Channels == nil {
		return nil, errors.New("harness needs all repositories")
	}
	if opts.Dialog == nil {
		return nil, errors.New("harness needs a permission dialog")
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Theme == nil {
		opts.Theme = styles.NewTheme()
	}
	log := logging.FromContext(ctx).With().Str("component", "harness").Logger()

	h := &Harness{
		Loop:     mainloop.New(ctx),
		Surface:  NewRecordingSurface(opts.Out, opts.Theme),
		Grants:   grants.NewStore(opts.Repos.Grants),
		Registry: notify.NewRegistry(opts.Repos.Channels),
	}
	h.Coalescer = mainloop.NewCoalescer(h.Loop.Post)

	opener := opts.Opener
	if opener == nil {
		opener = PrintOpener{Out: opts.Out, Theme: opts.Theme}
	}

	setup := opts.Setup
	if setup == nil {
		setup = ScriptedSetup{Out: opts.Out, Theme: opts.Theme}
	}
	sounds := opts.Sounds
	if sounds == nil {
		sounds = ScriptedSoundPicker{Out: opts.Out, Theme: opts.Theme}
	}
	files := opts.Files
	if files == nil {
		files = ScriptedFilePicker{Out: opts.Out, Theme: opts.Theme}
	}

	deps := usecase.SessionDeps{
		Surface:    h.Surface,
		Dialog:     grants.NewRecordingDialog(opts.Dialog, h.Grants),
		Checker:    h.Grants,
		Prompter:   opts.Prompter,
		Opener:     opener,
		Registry:   h.Registry,
		Prefs:      opts.Repos.Prefs,
		Notifier:   PrintNotifier{Out: opts.Out, Theme: opts.Theme},
		Toaster:    PrintToaster{Out: opts.Out, Theme: opts.Theme},
		Settings:   desktop.NewOpener(),
		Setup:      setup,
		Sounds:     sounds,
		Files:      files,
		FileSystem: filesystem.New(),
	}

	if !opts.NoBus {
		notifier, err := notify.NewNotifier(notify.Options{
			AppName:   opts.Notifications.AppName,
			TimeoutMs: int32(opts.Notifications.TimeoutMs),
		})
		if err != nil {
			log.Warn().Err(err).Msg("no notification server, toasts go to the terminal")
		} else {
			notifier.BindChannels(h.Registry)
			deps.Notifier = notifier
			deps.Toaster = notifier
			h.closers = append(h.closers, notifier)
		}

		inhibitor := idle.NewPortalInhibitor(ctx)
		deps.Inhibitor = inhibitor
		h.closers = append(h.closers, inhibitor)
	}

	h.Downloads = download.NewManager(ctx, download.Options{
		RetryMax:  opts.Downloads.RetryMax,
		UserAgent: opts.Downloads.UserAgent,
	}, downloadEvents{h}, h.Loop.Post)
	deps.Downloader = h.Downloads

	h.Shell = usecase.NewShell(opts.Session, deps, h.Loop.Post, h.Coalescer.Post)
	return h, nil
}

// Start starts the shell on the main loop.
func (h *Harness) Start(ctx context.Context) error {
	var err error
	if callErr := h.Loop.Call(ctx, func() { err = h.Shell.Start(ctx) }); callErr != nil {
		return callErr
	}
	return err
}

// Do runs fn on the main loop with the current session, if any, and waits.
func (h *Harness) Do(ctx context.Context, fn func(s *usecase.Session)) error {
	return h.Loop.Call(ctx, func() { fn(h.Shell.Session()) })
}

// Close ends the session, waits for downloads and stops the loop.
func (h *Harness) Close(ctx context.Context) error {
	var errs []error
	h.once.Do(func() {
		_ = h.Loop.Call(ctx, func() { h.Shell.Close(ctx) })
		h.Downloads.Close()
		h.Coalescer.Destroy()
		h.Loop.Stop()
		for _, c := range h.closers {
			errs = append(errs, c.Close())
		}
	})
	return errors.Join(errs...)
}

// downloadEvents routes manager events to whichever session is current.
// The manager posts them to the main loop.
type downloadEvents struct {
	h *Harness
}

func (d downloadEvents) OnDownloadEvent(ctx context.Context, event port.DownloadEvent) {
	s := d.h.Shell.Session()
	if s == nil || s.Downloads == nil {
		return
	}
	s.Downloads.OnDownloadEvent(ctx, event)
}
