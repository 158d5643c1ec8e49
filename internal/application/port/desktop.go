package port

import (
	"context"
	"errors"
)

// ErrUnsupported is returned by platform adapters that cannot perform an
// operation on the current system.
var ErrUnsupported = errors.New("operation not supported on this platform")

//go:generate mockgen -destination=mockgen/mock_external_opener.go -package=mock_port . ExternalOpener

// ExternalOpener hands a URI to the system's default handler.
type ExternalOpener interface {
	Open(ctx context.Context, uri string) error
}

// SettingsOpener opens the platform's settings for a notification channel.
type SettingsOpener interface {
	OpenChannelSettings(ctx context.Context, channelID string) error
}

// SoundPicker lets the user choose a notification sound.
type SoundPicker interface {
	// PickSound opens the picker preselected on current.
	// The callback receives the chosen reference; ok is false when the user
	// cancelled. An empty reference with ok true selects silence.
	PickSound(ctx context.Context, current string, callback func(ref string, ok bool))
}

// SetupLauncher shows the server setup screen.
type SetupLauncher interface {
	// OpenSetup shows setup prefilled with current. The callback receives
	// the saved address, or ok false when setup was dismissed.
	OpenSetup(ctx context.Context, current string, callback func(serverURL string, ok bool))
}

// FileChooserParams describes a file chooser opened by a page.
type FileChooserParams struct {
	// AcceptType is a single MIME pattern, "*/*" when unrestricted.
	AcceptType string
	Multiple   bool
}

// FilePicker shows the system file chooser.
type FilePicker interface {
	// PickFiles opens the chooser. The callback receives the selected URIs,
	// or nil when the user cancelled.
	PickFiles(ctx context.Context, params FileChooserParams, callback func(uris []string)) error
}

// DesktopIntegrationStatus describes what is installed for the desktop.
type DesktopIntegrationStatus struct {
	DesktopFileInstalled bool
	DesktopFilePath      string
	ExecutablePath       string
	// IsSchemeHandler is true when the desktop file handles the deep-link
	// scheme.
	IsSchemeHandler bool
}

// DesktopIntegration installs the launcher entry that routes deep links to
// the shell.
type DesktopIntegration interface {
	GetStatus(ctx context.Context) (*DesktopIntegrationStatus, error)
	InstallDesktopFile(ctx context.Context) (string, error)
	RemoveDesktopFile(ctx context.Context) error
	// RegisterSchemeHandler makes the installed entry the default handler
	// for the deep-link scheme.
	RegisterSchemeHandler(ctx context.Context) error
}
