package colorscheme

import (
	"github.com/godbus/dbus/v5"
)

const (
	detectorNamePortal = "portal"
	priorityPortal     = 100

	portalDest     = "org.freedesktop.portal.Desktop"
	portalPath     = "/org/freedesktop/portal/desktop"
	settingsRead   = "org.freedesktop.portal.Settings.Read"
	appearanceNS   = "org.freedesktop.appearance"
	colorSchemeKey = "color-scheme"
)

// Values of org.freedesktop.appearance color-scheme.
const (
	portalNoPreference uint32 = iota
	portalPreferDark
	portalPreferLight
)

// PortalDetector reads the color scheme from the XDG Desktop Portal
// Settings interface, which every portal backend implements.
type PortalDetector struct {
	conn *dbus.Conn
}

// NewPortalDetector connects to the session bus. Without one the detector
// reports itself unavailable.
func NewPortalDetector() *PortalDetector {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return &PortalDetector{}
	}
	return &PortalDetector{conn: conn}
}

// Name implements port.ColorSchemeDetector.
func (*PortalDetector) Name() string {
	return detectorNamePortal
}

// Priority implements port.ColorSchemeDetector.
func (*PortalDetector) Priority() int {
	return priorityPortal
}

// Available implements port.ColorSchemeDetector.
func (d *PortalDetector) Available() bool {
	return d.conn != nil
}

// Detect implements port.ColorSchemeDetector.
func (d *PortalDetector) Detect() (prefersDark, ok bool) {
	if d.conn == nil {
		return false, false
	}
	var reply dbus.Variant
	err := d.conn.Object(portalDest, portalPath).
		Call(settingsRead, 0, appearanceNS, colorSchemeKey).
		Store(&reply)
	if err != nil {
		return false, false
	}
	return portalScheme(reply)
}

// Close releases the bus connection.
func (d *PortalDetector) Close() error {
	if d.conn == nil {
		return nil
	}
	err := d.conn.Close()
	d.conn = nil
	return err
}

// portalScheme decodes a Read reply. Read wraps the value in a second
// variant, so both layers are unwrapped.
func portalScheme(v dbus.Variant) (prefersDark, ok bool) {
	value := v.Value()
	if inner, isVariant := value.(dbus.Variant); isVariant {
		value = inner.Value()
	}
	scheme, isUint := value.(uint32)
	if !isUint {
		return false, false
	}
	switch scheme {
	case portalPreferDark:
		return true, true
	case portalPreferLight:
		return false, true
	default:
		return false, false
	}
}
