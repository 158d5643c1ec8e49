// Package desktop provides desktop environment integration for Linux (XDG).
package desktop

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/shadowflee/fluxer/assets"
	"github.com/shadowflee/fluxer/internal/application/port"
	"github.com/shadowflee/fluxer/internal/logging"
)

const (
	appName         = "fluxer"
	desktopFileName = "fluxer.desktop"
	iconFileName    = "fluxer.svg"
	filePerm        = 0o644
	dirPerm         = 0o755
)

// desktopFileTemplate is the freedesktop.org desktop entry format.
// Placeholders: executable path, deep-link scheme.
const desktopFileTemplate = `[Desktop Entry]
Version=1.1
Type=Application
Name=Fluxer
GenericName=Chat
Comment=Desktop shell for a Fluxer server
Exec=%s open %%u
Icon=fluxer
Terminal=false
Categories=Network;InstantMessaging;Chat;
MimeType=x-scheme-handler/%s;
StartupNotify=true
StartupWMClass=fluxer
`

// runFunc runs a command to completion and returns its combined output.
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

var _ port.DesktopIntegration = (*Adapter)(nil)

// Adapter implements port.DesktopIntegration using XDG tools.
type Adapter struct {
	scheme          string
	dataHome        string
	xdgMimePath     string
	updateDesktopDB string
	run             runFunc
}

// New creates a desktop integration adapter for the deep-link scheme.
func New(scheme string) *Adapter {
	a := &Adapter{scheme: scheme, run: runCommand}
	if path, err := exec.LookPath("xdg-mime"); err == nil {
		a.xdgMimePath = path
	}
	if path, err := exec.LookPath("update-desktop-database"); err == nil {
		a.updateDesktopDB = path
	}
	return a
}

func (a *Adapter) mimeType() string {
	return "x-scheme-handler/" + a.scheme
}

func (a *Adapter) dataDir() (string, error) {
	dataHome := a.dataHome
	if dataHome == "" {
		dataHome = os.Getenv("XDG_DATA_HOME")
	}
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return dataHome, nil
}

func (a *Adapter) applicationsDir() (string, error) {
	dataHome, err := a.dataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataHome, "applications"), nil
}

func (a *Adapter) iconPath() (string, error) {
	dataHome, err := a.dataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataHome, "icons", "hicolor", "scalable", "apps", iconFileName), nil
}

func (a *Adapter) desktopFilePath() (string, error) {
	appDir, err := a.applicationsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, desktopFileName), nil
}

// executablePath returns the path to the running fluxer binary.
func executablePath() (string, error) {
	execPath, err := os.Executable()
	if err == nil {
		if resolved, symlinkErr := filepath.EvalSymlinks(execPath); symlinkErr == nil {
			execPath = resolved
		}
		return execPath, nil
	}

	path, err := exec.LookPath(appName)
	if err != nil {
		return "", fmt.Errorf("cannot find %s executable: %w", appName, err)
	}
	return path, nil
}

// GetStatus checks the current desktop integration state.
func (a *Adapter) GetStatus(ctx context.Context) (*port.DesktopIntegrationStatus, error) {
	log := logging.FromContext(ctx)
	status := &port.DesktopIntegrationStatus{}

	desktopPath, err := a.desktopFilePath()
	if err != nil {
		return nil, err
	}
	status.DesktopFilePath = desktopPath
	if _, statErr := os.Stat(desktopPath); statErr == nil {
		status.DesktopFileInstalled = true
	}

	if execPath, err := executablePath(); err == nil {
		status.ExecutablePath = execPath
	}

	if a.xdgMimePath != "" {
		out, err := a.run(ctx, a.xdgMimePath, "query", "default", a.mimeType())
		if err == nil {
			status.IsSchemeHandler = strings.TrimSpace(string(out)) == desktopFileName
		}
	}

	log.Debug().
		Bool("desktop_installed", status.DesktopFileInstalled).
		Bool("scheme_handler", status.IsSchemeHandler).
		Str("desktop_path", status.DesktopFilePath).
		Str("exec_path", status.ExecutablePath).
		Msg("desktop integration status")

	return status, nil
}

// InstallDesktopFile writes the desktop entry to the XDG applications directory.
func (a *Adapter) InstallDesktopFile(ctx context.Context) (string, error) {
	log := logging.FromContext(ctx)

	execPath, err := executablePath()
	if err != nil {
		return "", err
	}
	desktopPath, err := a.desktopFilePath()
	if err != nil {
		return "", err
	}

	appDir := filepath.Dir(desktopPath)
	if err := os.MkdirAll(appDir, dirPerm); err != nil {
		return "", fmt.Errorf("create applications dir: %w", err)
	}

	content := fmt.Sprintf(desktopFileTemplate, execPath, a.scheme)
	if err := os.WriteFile(desktopPath, []byte(content), filePerm); err != nil {
		return "", fmt.Errorf("write desktop file: %w", err)
	}
	log.Info().Str("path", desktopPath).Msg("desktop file installed")

	if iconPath, err := a.iconPath(); err == nil {
		if err := os.MkdirAll(filepath.Dir(iconPath), dirPerm); err == nil {
			if err := os.WriteFile(iconPath, assets.Icon, filePerm); err != nil {
				log.Debug().Err(err).Msg("icon install failed (non-fatal)")
			}
		}
	}

	if a.updateDesktopDB != "" {
		if _, err := a.run(ctx, a.updateDesktopDB, appDir); err != nil {
			log.Debug().Err(err).Msg("update-desktop-database failed (non-fatal)")
		}
	}
	return desktopPath, nil
}

// RemoveDesktopFile removes the desktop entry. A missing file is not an error.
func (a *Adapter) RemoveDesktopFile(ctx context.Context) error {
	log := logging.FromContext(ctx)

	desktopPath, err := a.desktopFilePath()
	if err != nil {
		return err
	}
	if err := os.Remove(desktopPath); err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("path", desktopPath).Msg("desktop file not found (already removed)")
			return nil
		}
		return fmt.Errorf("remove desktop file: %w", err)
	}
	log.Info().Str("path", desktopPath).Msg("desktop file removed")

	if iconPath, err := a.iconPath(); err == nil {
		_ = os.Remove(iconPath)
	}

	if a.updateDesktopDB != "" {
		_, _ = a.run(ctx, a.updateDesktopDB, filepath.Dir(desktopPath))
	}
	return nil
}

// RegisterSchemeHandler makes fluxer.desktop the default handler for the
// deep-link scheme.
func (a *Adapter) RegisterSchemeHandler(ctx context.Context) error {
	if a.xdgMimePath == "" {
		return fmt.Errorf("xdg-mime not found (install xdg-utils)")
	}
	desktopPath, err := a.desktopFilePath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(desktopPath); os.IsNotExist(err) {
		return fmt.Errorf("desktop file not installed - run 'fluxer desktop install' first")
	}

	if out, err := a.run(ctx, a.xdgMimePath, "default", desktopFileName, a.mimeType()); err != nil {
		return fmt.Errorf("xdg-mime failed: %s", strings.TrimSpace(string(out)))
	}
	logging.FromContext(ctx).Info().Str("mime", a.mimeType()).Msg("registered deep-link handler")
	return nil
}
