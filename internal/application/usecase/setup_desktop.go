package usecase

import (
	"context"

	"github.com/shadowflee/fluxer/internal/application/port"
	"github.com/shadowflee/fluxer/internal/logging"
)

// InstallDesktopUseCase installs the desktop entry and makes fluxer the
// handler of its deep-link scheme.
type InstallDesktopUseCase struct {
	desktop port.DesktopIntegration
}

// NewInstallDesktopUseCase creates a new InstallDesktopUseCase.
func NewInstallDesktopUseCase(desktop port.DesktopIntegration) *InstallDesktopUseCase {
	return &InstallDesktopUseCase{desktop: desktop}
}

// InstallDesktopOutput contains the result of the install operation.
type InstallDesktopOutput struct {
	DesktopPath        string
	WasDesktopExisting bool
	WasSchemeHandler   bool
}

// Execute installs the desktop file, then registers the scheme handler
// unless fluxer already is one.
func (uc *InstallDesktopUseCase) Execute(ctx context.Context) (*InstallDesktopOutput, error) {
	log := logging.FromContext(ctx)

	status, err := uc.desktop.GetStatus(ctx)
	if err != nil {
		return nil, err
	}

	output := &InstallDesktopOutput{
		WasDesktopExisting: status.DesktopFileInstalled,
		WasSchemeHandler:   status.IsSchemeHandler,
	}

	desktopPath, err := uc.desktop.InstallDesktopFile(ctx)
	if err != nil {
		return nil, err
	}
	output.DesktopPath = desktopPath

	if !status.IsSchemeHandler {
		if err := uc.desktop.RegisterSchemeHandler(ctx); err != nil {
			return output, err
		}
	}

	log.Info().
		Str("desktop_path", output.DesktopPath).
		Bool("was_desktop_existing", output.WasDesktopExisting).
		Bool("was_scheme_handler", output.WasSchemeHandler).
		Msg("desktop install complete")

	return output, nil
}

// RemoveDesktopUseCase removes desktop integration files.
type RemoveDesktopUseCase struct {
	desktop port.DesktopIntegration
}

// NewRemoveDesktopUseCase creates a new RemoveDesktopUseCase.
func NewRemoveDesktopUseCase(desktop port.DesktopIntegration) *RemoveDesktopUseCase {
	return &RemoveDesktopUseCase{desktop: desktop}
}

// RemoveDesktopOutput contains the result of the remove operation.
type RemoveDesktopOutput struct {
	WasDesktopInstalled bool
	WasSchemeHandler    bool
	RemovedDesktopPath  string
}

// Execute removes the desktop entry.
func (uc *RemoveDesktopUseCase) Execute(ctx context.Context) (*RemoveDesktopOutput, error) {
	status, err := uc.desktop.GetStatus(ctx)
	if err != nil {
		return nil, err
	}

	output := &RemoveDesktopOutput{
		WasDesktopInstalled: status.DesktopFileInstalled,
		WasSchemeHandler:    status.IsSchemeHandler,
		RemovedDesktopPath:  status.DesktopFilePath,
	}

	if err := uc.desktop.RemoveDesktopFile(ctx); err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info().
		Bool("was_desktop_installed", output.WasDesktopInstalled).
		Bool("was_scheme_handler", output.WasSchemeHandler).
		Msg("desktop integration removed")

	return output, nil
}
