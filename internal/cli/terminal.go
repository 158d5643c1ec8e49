package cli

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shadowflee/fluxer/internal/application/port"
	"github.com/shadowflee/fluxer/internal/application/usecase"
	"github.com/shadowflee/fluxer/internal/cli/model"
	"github.com/shadowflee/fluxer/internal/cli/styles"
	"github.com/shadowflee/fluxer/internal/domain/entity"
	"github.com/shadowflee/fluxer/internal/logging"
)

var (
	_ port.PermissionDialog = (*TerminalDialog)(nil)
	_ port.TrustPrompter    = (*TerminalPrompter)(nil)
	_ port.SetupLauncher    = (*TerminalSetup)(nil)
	_ port.SoundPicker      = (*TerminalSoundPicker)(nil)
	_ port.FilePicker       = (*TerminalFilePicker)(nil)
	_ port.PermissionDialog = ScriptedDialog{}
	_ port.TrustPrompter    = ScriptedPrompter{}
	_ port.SetupLauncher    = ScriptedSetup{}
	_ port.SoundPicker      = ScriptedSoundPicker{}
	_ port.FilePicker       = ScriptedFilePicker{}
	_ port.Toaster          = PrintToaster{}
	_ port.SystemNotifier   = PrintNotifier{}
)

// terminal serializes Bubble Tea programs on one terminal.
type terminal struct {
	in    io.Reader
	out   io.Writer
	theme *styles.Theme
	mu    sync.Mutex
}

func (t *terminal) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if t.in != nil {
		opts = append(opts, tea.WithInput(t.in))
	}
	if t.out != nil {
		opts = append(opts, tea.WithOutput(t.out))
	}
	return tea.NewProgram(m, opts...).Run()
}

// TerminalAdapters are the interactive adapters of one terminal. They share
// it, so only one dialog is on screen at a time.
type TerminalAdapters struct {
	Dialog   *TerminalDialog
	Prompter *TerminalPrompter
	Setup    *TerminalSetup
	Sounds   *TerminalSoundPicker
	Files    *TerminalFilePicker
}

// NewTerminalAdapters creates every interactive adapter on in and out.
func NewTerminalAdapters(in io.Reader, out io.Writer, theme *styles.Theme) TerminalAdapters {
	term := &terminal{in: in, out: out, theme: theme}
	return TerminalAdapters{
		Dialog:   &TerminalDialog{term: term},
		Prompter: &TerminalPrompter{term: term},
		Setup:    &TerminalSetup{term: term},
		Sounds:   &TerminalSoundPicker{term: term},
		Files:    &TerminalFilePicker{term: term},
	}
}

// TerminalDialog asks for platform grants with a checkbox list. The dialog
// runs on its own goroutine; the callback fires when the user answers.
type TerminalDialog struct {
	term *terminal
}

// RequestGrants implements port.PermissionDialog.
func (d *TerminalDialog) RequestGrants(
	ctx context.Context,
	grants []entity.Grant,
	callback func(results map[entity.Grant]bool),
) {
	go func() {
		defer logging.RecoverTask(logging.FromContext(ctx), "permission-dialog")

		final, err := d.term.run(ctx, model.NewPermissionModel(d.term.theme, grants))
		if err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("permission dialog failed, denying")
			callback(map[entity.Grant]bool{})
			return
		}
		callback(final.(model.PermissionModel).Results())
	}()
}

// TerminalPrompter asks about untrusted certificates with a yes/no prompt.
type TerminalPrompter struct {
	term *terminal
}

// ConfirmUntrustedCertificate implements port.TrustPrompter.
func (p *TerminalPrompter) ConfirmUntrustedCertificate(ctx context.Context, host string, callback func(proceed bool)) {
	go func() {
		defer logging.RecoverTask(logging.FromContext(ctx), "trust-prompt")

		final, err := p.term.run(ctx, model.NewTrustModel(p.term.theme, host))
		if err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("certificate prompt failed, refusing")
			callback(false)
			return
		}
		callback(final.(model.TrustModel).Proceed())
	}()
}

// TerminalSetup asks for the server address with a text prompt.
type TerminalSetup struct {
	term *terminal
}

// OpenSetup implements port.SetupLauncher.
func (s *TerminalSetup) OpenSetup(ctx context.Context, current string, callback func(string, bool)) {
	go func() {
		defer logging.RecoverTask(logging.FromContext(ctx), "setup-prompt")

		final, err := s.term.run(ctx, model.NewServerInputModel(s.term.theme, current))
		if err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("setup prompt failed")
			callback("", false)
			return
		}
		callback(final.(model.InputModel).Value())
	}()
}

// TerminalSoundPicker asks for a sound file with a text prompt.
type TerminalSoundPicker struct {
	term *terminal
}

// PickSound implements port.SoundPicker.
func (p *TerminalSoundPicker) PickSound(ctx context.Context, current string, callback func(string, bool)) {
	go func() {
		defer logging.RecoverTask(logging.FromContext(ctx), "sound-prompt")

		final, err := p.term.run(ctx, model.NewSoundInputModel(p.term.theme, current))
		if err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("sound prompt failed")
			callback("", false)
			return
		}
		callback(final.(model.InputModel).Value())
	}()
}

// TerminalFilePicker browses the filesystem for a page's file input,
// starting in the working directory.
type TerminalFilePicker struct {
	term *terminal
}

// PickFiles implements port.FilePicker.
func (p *TerminalFilePicker) PickFiles(ctx context.Context, params port.FileChooserParams, callback func([]string)) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("file picker: %w", err)
	}
	go func() {
		defer logging.RecoverTask(logging.FromContext(ctx), "file-picker")

		final, err := p.term.run(ctx, model.NewFileModel(p.term.theme, dir, params.AcceptType, params.Multiple))
		if err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("file picker failed")
			callback(nil)
			return
		}
		callback(fileURIs(final.(model.FileModel).Selected()))
	}()
	return nil
}

// fileURIs turns local paths into absolute file URIs. Nil stays nil.
func fileURIs(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	uris := make([]string, 0, len(paths))
	for _, p := range paths {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		uris = append(uris, (&url.URL{Scheme: "file", Path: p}).String())
	}
	return uris
}

// ScriptedDialog answers every grant request the same way, at once.
type ScriptedDialog struct {
	Allow bool
}

// RequestGrants implements port.PermissionDialog.
func (d ScriptedDialog) RequestGrants(_ context.Context, grants []entity.Grant, callback func(map[entity.Grant]bool)) {
	results := make(map[entity.Grant]bool, len(grants))
	for _, g := range grants {
		results[g] = d.Allow
	}
	callback(results)
}

// ScriptedPrompter answers every certificate prompt the same way, at once.
type ScriptedPrompter struct {
	Proceed bool
}

// ConfirmUntrustedCertificate implements port.TrustPrompter.
func (p ScriptedPrompter) ConfirmUntrustedCertificate(_ context.Context, _ string, callback func(bool)) {
	callback(p.Proceed)
}

// ScriptedSetup answers the setup screen with ServerURL, or dismisses it
// when ServerURL is empty. Each answer is printed to Out.
type ScriptedSetup struct {
	ServerURL string
	Out       io.Writer
	Theme     *styles.Theme
}

// OpenSetup implements port.SetupLauncher.
func (s ScriptedSetup) OpenSetup(_ context.Context, current string, callback func(string, bool)) {
	if s.ServerURL == "" {
		report(s.Out, s.Theme, "setup", current, "dismissed", false)
		callback("", false)
		return
	}
	report(s.Out, s.Theme, "setup", current, s.ServerURL, true)
	callback(s.ServerURL, true)
}

// ScriptedSoundPicker answers the sound picker with Sound when Set, and
// dismisses it otherwise. An empty Sound with Set selects silence.
type ScriptedSoundPicker struct {
	Sound string
	Set   bool
	Out   io.Writer
	Theme *styles.Theme
}

// PickSound implements port.SoundPicker.
func (p ScriptedSoundPicker) PickSound(_ context.Context, current string, callback func(string, bool)) {
	if !p.Set {
		report(p.Out, p.Theme, "sound", current, "dismissed", false)
		callback("", false)
		return
	}
	ref := model.SoundRef(p.Sound)
	report(p.Out, p.Theme, "sound", current, usecase.SoundLabel(ref), true)
	callback(ref, true)
}

// ScriptedFilePicker answers every file chooser with Files, or cancels it
// when there are none. A single-file chooser gets the first one.
type ScriptedFilePicker struct {
	Files []string
	Out   io.Writer
	Theme *styles.Theme
}

// PickFiles implements port.FilePicker.
func (p ScriptedFilePicker) PickFiles(_ context.Context, params port.FileChooserParams, callback func([]string)) error {
	files := p.Files
	if !params.Multiple && len(files) > 1 {
		files = files[:1]
	}
	uris := fileURIs(files)
	if uris == nil {
		report(p.Out, p.Theme, "files", params.AcceptType, "cancelled", false)
	} else {
		report(p.Out, p.Theme, "files", params.AcceptType, strings.Join(uris, ","), true)
	}
	callback(uris)
	return nil
}

func report(out io.Writer, theme *styles.Theme, gate, subject, outcome string, ok bool) {
	if out == nil {
		return
	}
	if theme == nil {
		theme = styles.NewTheme()
	}
	fmt.Fprintln(out, theme.Decision(gate, subject, outcome, ok))
}

// PrintToaster writes toasts to the terminal. It is used when no
// notification server is reachable.
type PrintToaster struct {
	Out   io.Writer
	Theme *styles.Theme
}

// Show implements port.Toaster.
func (t PrintToaster) Show(_ context.Context, message string) {
	fmt.Fprintln(t.Out, t.Theme.Field("toast", message))
}

// PrintNotifier writes notifications to the terminal.
type PrintNotifier struct {
	Out   io.Writer
	Theme *styles.Theme
}

// Post implements port.SystemNotifier.
func (n PrintNotifier) Post(_ context.Context, sn port.SystemNotification) error {
	fmt.Fprintln(n.Out, n.Theme.Field("notification", fmt.Sprintf("#%d [%s] %s: %s", sn.ID, sn.ChannelID, sn.Title, sn.Body)))
	return nil
}
