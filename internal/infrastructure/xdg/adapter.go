// Package xdg exposes the fluxer XDG directories through port.XDGPaths.
package xdg

import (
	"github.com/shadowflee/fluxer/internal/application/port"
	"github.com/shadowflee/fluxer/internal/infrastructure/config"
)

var _ port.XDGPaths = (*Adapter)(nil)

// Adapter implements port.XDGPaths using config.GetXDGDirs().
type Adapter struct{}

// New creates a new XDG paths adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ConfigDir() (string, error) {
	return config.GetConfigDir()
}

func (a *Adapter) DataDir() (string, error) {
	return config.GetDataDir()
}

func (a *Adapter) StateDir() (string, error) {
	return config.GetStateDir()
}

func (a *Adapter) CacheDir() (string, error) {
	dirs, err := config.GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.CacheHome, nil
}

// DownloadDir returns $XDG_DOWNLOAD_DIR, or ~/Downloads.
func (a *Adapter) DownloadDir() (string, error) {
	return config.GetDownloadDir()
}
