package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shadowflee/fluxer/internal/application/port"
	"github.com/shadowflee/fluxer/internal/bootstrap"
	"github.com/shadowflee/fluxer/internal/cli"
	"github.com/shadowflee/fluxer/internal/infrastructure/config"
	"github.com/shadowflee/fluxer/internal/infrastructure/desktop"
	"github.com/shadowflee/fluxer/internal/logging"
)

// sessionFlags are shared by the commands that run a shell session.
type sessionFlags struct {
	interactive bool
	allow       bool
	proceed     bool
	noBus       bool
	external    bool
	setupURL    string
	sound       string
	files       []string

	cmd *cobra.Command
}

func (f *sessionFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.interactive, "interactive", "i", false, "ask in the terminal instead of answering dialogs from flags")
	cmd.Flags().BoolVar(&f.allow, "allow", false, "grant device requests without asking")
	cmd.Flags().BoolVar(&f.proceed, "proceed", false, "accept certificate prompts without asking")
	cmd.Flags().BoolVar(&f.noBus, "no-bus", false, "print notifications instead of using D-Bus")
	cmd.Flags().BoolVar(&f.external, "external", false, "open foreign links in the system browser")
	cmd.Flags().StringVar(&f.setupURL, "setup-url", "", "server address to enter when the setup screen opens")
	cmd.Flags().StringVar(&f.sound, "sound", "", "sound to pick when the sound picker opens (empty for silence)")
	cmd.Flags().StringArrayVar(&f.files, "file", nil, "file to choose when a page opens a file input (repeatable)")
	f.cmd = cmd
}

func (f sessionFlags) soundChosen() bool {
	return f.cmd != nil && f.cmd.Flags().Changed("sound")
}

// startHarness takes the instance lock, builds a shell and starts it. The
// returned cleanup stops everything.
func startHarness(a *cli.App, f sessionFlags, out io.Writer) (*cli.Harness, func(), error) {
	ctx := a.Ctx()

	stateDir, err := config.GetStateDir()
	if err != nil {
		return nil, nil, err
	}
	lock, err := bootstrap.AcquireInstanceLock(stateDir)
	if err != nil {
		if errors.Is(err, bootstrap.ErrAlreadyRunning) {
			return nil, nil, fmt.Errorf("%w; close it first", err)
		}
		return nil, nil, err
	}

	if err := a.Prepare(ctx); err != nil {
		_ = lock.Release()
		return nil, nil, err
	}
	repos, err := a.Repositories(ctx)
	if err != nil {
		_ = lock.Release()
		return nil, nil, err
	}

	var (
		dialog   port.PermissionDialog = cli.ScriptedDialog{Allow: f.allow}
		prompter port.TrustPrompter    = cli.ScriptedPrompter{Proceed: f.proceed}
		setup    port.SetupLauncher    = cli.ScriptedSetup{ServerURL: f.setupURL, Out: out, Theme: a.Theme}
		sounds   port.SoundPicker      = cli.ScriptedSoundPicker{Sound: f.sound, Set: f.soundChosen(), Out: out, Theme: a.Theme}
		files    port.FilePicker       = cli.ScriptedFilePicker{Files: f.files, Out: out, Theme: a.Theme}
	)
	if f.interactive {
		term := cli.NewTerminalAdapters(os.Stdin, os.Stderr, a.Theme)
		dialog, prompter = term.Dialog, term.Prompter
		setup, sounds, files = term.Setup, term.Sounds, term.Files
	}
	var opener port.ExternalOpener
	if f.external {
		opener = desktop.NewOpener()
	}

	h, err := cli.NewHarness(ctx, cli.HarnessOptions{
		Session:       a.SessionConfig(),
		Repos:         repos,
		Dialog:        dialog,
		Prompter:      prompter,
		Opener:        opener,
		Setup:         setup,
		Sounds:        sounds,
		Files:         files,
		Notifications: a.Config.Notifications,
		Downloads:     a.Config.Downloads,
		Out:           out,
		Theme:         a.Theme,
		NoBus:         f.noBus,
	})
	if err != nil {
		_ = lock.Release()
		return nil, nil, err
	}

	if err := a.WatchConfig(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("config reload disabled")
	}

	cleanup := func() {
		_ = h.Close(ctx)
		_ = lock.Release()
	}
	return h, cleanup, nil
}

func openInput(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}
