package port

// ColorSchemePreference is the resolved light or dark preference.
type ColorSchemePreference struct {
	PrefersDark bool

	// Source names the detector that decided, "config" for an explicit
	// setting or "fallback" when nothing answered.
	Source string
}

// ColorSchemeDetector reads the desktop's light or dark preference.
type ColorSchemeDetector interface {
	// Name returns a human-readable name for this detector.
	Name() string

	// Priority orders detectors; higher values are asked first.
	Priority() int

	// Available reports whether this detector can be used at all.
	Available() bool

	// Detect returns the preference and whether the desktop expressed one.
	Detect() (prefersDark bool, ok bool)
}
