package port

import (
	"context"

	"github.com/shadowflee/fluxer/internal/domain/entity"
)

// ContentSurface is the embedded browser view that renders the web app.
type ContentSurface interface {
	// LoadURL navigates the surface to url.
	LoadURL(ctx context.Context, url string)

	// EvaluateScript runs script in the current page. Results are discarded.
	EvaluateScript(ctx context.Context, script string)

	// CurrentURL returns the address of the page being shown, or "".
	CurrentURL() string
}

// CapabilityResponder answers one capability request raised by the surface.
// Exactly one of its methods is called, exactly once.
type CapabilityResponder interface {
	Grant(caps []entity.Capability)
	Deny()
}

// TLSErrorHandler resumes or aborts the load that raised a certificate error.
type TLSErrorHandler interface {
	Proceed()
	Cancel()
}

// TLSError describes a certificate failure on a navigation.
type TLSError struct {
	// URL is the address whose certificate failed.
	URL string
	// Host is the host name reported with the error, if any.
	Host string
	// Reason is the platform's description of the failure.
	Reason string
}

// MainThread runs functions on the single decision thread.
type MainThread interface {
	Post(fn func())
}
