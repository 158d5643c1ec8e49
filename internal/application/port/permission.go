package port

import (
	"context"

	"github.com/shadowflee/fluxer/internal/domain/entity"
)

// PermissionDialog asks the user for platform grants.
// Only one dialog may be open at a time; callers serialize requests.
type PermissionDialog interface {
	// RequestGrants shows the dialog for the given grants.
	// The callback receives one entry per requested grant; a missing entry
	// counts as refused.
	RequestGrants(ctx context.Context, grants []entity.Grant, callback func(results map[entity.Grant]bool))
}

// GrantChecker reports which platform grants are currently held.
type GrantChecker interface {
	IsGranted(ctx context.Context, grant entity.Grant) bool
}

// TrustPrompter asks the user whether to accept an untrusted certificate.
type TrustPrompter interface {
	// ConfirmUntrustedCertificate shows the prompt for host.
	// The callback is invoked once with the user's choice.
	ConfirmUntrustedCertificate(ctx context.Context, host string, callback func(proceed bool))
}
