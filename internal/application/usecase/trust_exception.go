package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/shadowflee/fluxer/internal/application/port"
	"github.com/shadowflee/fluxer/internal/domain/entity"
	"github.com/shadowflee/fluxer/internal/domain/url"
	"github.com/shadowflee/fluxer/internal/logging"
)

// UntrustedCertificateTitle heads the certificate prompt.
const UntrustedCertificateTitle = "Untrusted Certificate"

// UntrustedCertificateMessage is the body of the certificate prompt for host.
func UntrustedCertificateMessage(host string) string {
	return fmt.Sprintf("The server %q has an untrusted SSL certificate.\n\n"+
		"This is normal for self-signed certificates on private servers. Continue?", host)
}

// DecideTrustException decides whether a certificate error may be overridden.
// Only the configured server's host may ever be trusted: errorURL must be on
// trustedHost, and a reported errorHost must agree with it.
func DecideTrustException(errorHost, errorURL, trustedHost string) entity.TrustDecision {
	if trustedHost == "" {
		return entity.TrustReject
	}
	if !url.ReferencesHost(errorURL, trustedHost) {
		return entity.TrustReject
	}
	if errorHost != "" && !strings.EqualFold(errorHost, trustedHost) {
		return entity.TrustReject
	}
	return entity.TrustPrompt
}

// TrustExceptionGate handles certificate errors raised while loading pages.
// Choices are never remembered: every error prompts again.
type TrustExceptionGate struct {
	trustedHost string
	prompter    port.TrustPrompter
}

// NewTrustExceptionGate creates a gate for the configured server host.
func NewTrustExceptionGate(trustedHost string, prompter port.TrustPrompter) *TrustExceptionGate {
	return &TrustExceptionGate{
		trustedHost: strings.ToLower(trustedHost),
		prompter:    prompter,
	}
}

// HandleSSLError cancels the load or asks the user, then resumes the load
// through handler. The load stays blocked until the user answers.
func (g *TrustExceptionGate) HandleSSLError(ctx context.Context, tlsErr port.TLSError, handler port.TLSErrorHandler) {
	log := logging.FromContext(ctx).With().
		Str("component", "trust-gate").
		Str("url", tlsErr.URL).
		Str("reason", tlsErr.Reason).
		Logger()

	decision := DecideTrustException(tlsErr.Host, tlsErr.URL, g.trustedHost)
	if decision != entity.TrustPrompt || g.prompter == nil {
		log.Debug().Str("decision", decision.String()).Msg("certificate error rejected")
		handler.Cancel()
		return
	}

	log.Info().Msg("asking user about untrusted certificate")
	var once sync.Once
	g.prompter.ConfirmUntrustedCertificate(ctx, g.trustedHost, func(proceed bool) {
		once.Do(func() {
			if proceed {
				log.Warn().Msg("user accepted untrusted certificate for this load")
				handler.Proceed()
				return
			}
			log.Info().Msg("user refused untrusted certificate")
			handler.Cancel()
		})
	})
}
