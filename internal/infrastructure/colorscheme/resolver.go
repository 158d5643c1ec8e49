// Package colorscheme picks the light or dark terminal palette from the
// config and the desktop's preference.
package colorscheme

import (
	"sort"
	"strings"

	"github.com/shadowflee/fluxer/internal/application/port"
)

const (
	sourceFallback = "fallback"
	sourceConfig   = "config"
)

// Resolver answers with the configured scheme when one is forced and
// otherwise asks its detectors, highest priority first.
type Resolver struct {
	override  string
	detectors []port.ColorSchemeDetector
}

// NewResolver creates a resolver. override is the appearance.color_scheme
// setting; "default" or empty defers to the detectors.
func NewResolver(override string, detectors ...port.ColorSchemeDetector) *Resolver {
	sorted := make([]port.ColorSchemeDetector, 0, len(detectors))
	for _, d := range detectors {
		if d != nil {
			sorted = append(sorted, d)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})
	return &Resolver{override: override, detectors: sorted}
}

// Resolve returns the effective preference. Dark wins when nothing answers.
func (r *Resolver) Resolve() port.ColorSchemePreference {
	switch strings.ToLower(strings.TrimSpace(r.override)) {
	case "prefer-dark", "dark":
		return port.ColorSchemePreference{PrefersDark: true, Source: sourceConfig}
	case "prefer-light", "light":
		return port.ColorSchemePreference{PrefersDark: false, Source: sourceConfig}
	}

	for _, d := range r.detectors {
		if !d.Available() {
			continue
		}
		if prefersDark, ok := d.Detect(); ok {
			return port.ColorSchemePreference{PrefersDark: prefersDark, Source: d.Name()}
		}
	}
	return port.ColorSchemePreference{PrefersDark: true, Source: sourceFallback}
}
