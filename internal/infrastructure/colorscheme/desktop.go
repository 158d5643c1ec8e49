package colorscheme

import (
	"os"
	"os/exec"
	"strings"
)

const (
	detectorNameGsettings = "gsettings"
	priorityGsettings     = 10

	detectorNameEnv = "GTK_THEME"
	priorityEnv     = 20
)

// GsettingsDetector asks GNOME's org.gnome.desktop.interface color-scheme.
type GsettingsDetector struct {
	// run executes gsettings; tests replace it.
	run func(args ...string) ([]byte, error)
}

// NewGsettingsDetector creates a detector that shells out to gsettings.
func NewGsettingsDetector() *GsettingsDetector {
	return &GsettingsDetector{run: func(args ...string) ([]byte, error) {
		return exec.Command("gsettings", args...).Output()
	}}
}

// Name implements port.ColorSchemeDetector.
func (*GsettingsDetector) Name() string { return detectorNameGsettings }

// Priority implements port.ColorSchemeDetector.
func (*GsettingsDetector) Priority() int { return priorityGsettings }

// Available implements port.ColorSchemeDetector.
func (*GsettingsDetector) Available() bool {
	_, err := exec.LookPath("gsettings")
	return err == nil
}

// Detect implements port.ColorSchemeDetector.
func (d *GsettingsDetector) Detect() (prefersDark, ok bool) {
	out, err := d.run("get", "org.gnome.desktop.interface", "color-scheme")
	if err != nil {
		return false, false
	}
	switch strings.Trim(strings.TrimSpace(string(out)), `'"`) {
	case "prefer-dark":
		return true, true
	case "prefer-light":
		return false, true
	default:
		return false, false
	}
}

// EnvDetector treats a GTK_THEME naming a dark variant as a dark preference.
type EnvDetector struct {
	getenv func(string) string
}

// NewEnvDetector creates a detector over the process environment.
func NewEnvDetector() *EnvDetector {
	return &EnvDetector{getenv: os.Getenv}
}

// Name implements port.ColorSchemeDetector.
func (*EnvDetector) Name() string { return detectorNameEnv }

// Priority implements port.ColorSchemeDetector.
func (*EnvDetector) Priority() int { return priorityEnv }

// Available implements port.ColorSchemeDetector.
func (d *EnvDetector) Available() bool {
	return d.getenv("GTK_THEME") != ""
}

// Detect implements port.ColorSchemeDetector.
func (d *EnvDetector) Detect() (prefersDark, ok bool) {
	theme := d.getenv("GTK_THEME")
	if theme == "" {
		return false, false
	}
	return strings.Contains(strings.ToLower(theme), "dark"), true
}
