package entity

import "github.com/google/uuid"

// Capability is a device resource a page asks for through a capture API.
type Capability string

const (
	// CapabilityAudio is microphone capture.
	CapabilityAudio Capability = "audio"

	// CapabilityVideo is camera capture.
	CapabilityVideo Capability = "video"

	// CapabilityProtectedMedia is DRM playback. Never granted by the shell.
	CapabilityProtectedMedia Capability = "protected_media"

	// CapabilityMIDISysex is MIDI system-exclusive access. Never granted by the shell.
	CapabilityMIDISysex Capability = "midi_sysex"
)

// IsSupported reports whether the shell can ever grant the capability.
func (c Capability) IsSupported() bool {
	return c == CapabilityAudio || c == CapabilityVideo
}

// RequiredGrants returns the platform grants a capability maps to.
// Unsupported capabilities map to nothing.
func RequiredGrants(c Capability) []Grant {
	switch c {
	case CapabilityAudio:
		return []Grant{GrantMicrophone}
	case CapabilityVideo:
		return []Grant{GrantCamera}
	default:
		return nil
	}
}

// CapabilityRequest is raised by the browser surface when a page calls a
// capture API. Requests are compared by pointer; ID only labels log lines.
type CapabilityRequest struct {
	ID           string
	Origin       string
	Capabilities []Capability
}

// NewCapabilityRequest creates a request with a fresh identifier.
func NewCapabilityRequest(origin string, caps ...Capability) *CapabilityRequest {
	return &CapabilityRequest{
		ID:           uuid.NewString(),
		Origin:       origin,
		Capabilities: caps,
	}
}

// CapabilitiesToStrings converts capabilities to strings for logging.
func CapabilitiesToStrings(caps []Capability) []string {
	result := make([]string, len(caps))
	for i, c := range caps {
		result[i] = string(c)
	}
	return result
}
