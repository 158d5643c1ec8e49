package usecase

import (
	"context"
	"sync/atomic"

	"github.com/shadowflee/fluxer/internal/application/port"
	"github.com/shadowflee/fluxer/internal/domain/entity"
	"github.com/shadowflee/fluxer/internal/domain/url"
	"github.com/shadowflee/fluxer/internal/logging"
)

// BridgeMarkerScript tells page script that the native bridge is available.
const BridgeMarkerScript = "window.__fluxerAndroid = true;"

// DecideNavigation decides whether the surface may load target itself.
// Anything that cannot be parsed is delegated, which blocks it.
func DecideNavigation(target string, trusted entity.Origin) entity.NavigationDecision {
	if url.SameOriginAs(target, trusted) {
		return entity.NavigationStay
	}
	return entity.NavigationDelegate
}

// DecidePageLanded classifies a page that finished loading.
func DecidePageLanded(landed string, trusted entity.Origin, fallbackPage string) entity.LandingDecision {
	if url.SameOriginAs(landed, trusted) || url.IsFallbackPage(landed, fallbackPage) {
		return entity.LandingOK
	}
	if url.IsInternalPage(landed) {
		return entity.LandingIgnore
	}
	return entity.LandingFallback
}

// NavigationGate keeps the surface on the trusted origin and decides when
// the bridge is exposed to the page.
type NavigationGate struct {
	trusted      entity.Origin
	fallbackPage string
	surface      port.ContentSurface
	opener       port.ExternalOpener

	exposed atomic.Bool
	landed  []func(ctx context.Context)
}

// NewNavigationGate creates a gate for the trusted origin. fallbackPage is
// the address of the bundled error page.
func NewNavigationGate(
	trusted entity.Origin,
	fallbackPage string,
	surface port.ContentSurface,
	opener port.ExternalOpener,
) *NavigationGate {
	return &NavigationGate{
		trusted:      trusted,
		fallbackPage: fallbackPage,
		surface:      surface,
		opener:       opener,
	}
}

// OnTrustedLanding registers fn to run after the marker has been injected
// into a trusted page.
func (g *NavigationGate) OnTrustedLanding(fn func(ctx context.Context)) {
	if fn != nil {
		g.landed = append(g.landed, fn)
	}
}

// BridgeExposed reports whether the page currently shown may use the bridge.
// Safe to call from any goroutine.
func (g *NavigationGate) BridgeExposed() bool {
	return g.exposed.Load()
}

// FallbackPage returns the address of the bundled error page.
func (g *NavigationGate) FallbackPage() string {
	return g.fallbackPage
}

// OnNavigation is called before the surface follows a link. It returns
// NavigationStay when the surface may load target. Cross-origin web and mail
// links are handed to the system handler.
func (g *NavigationGate) OnNavigation(ctx context.Context, target string) entity.NavigationDecision {
	log := logging.FromContext(ctx).With().
		Str("component", "navigation-gate").
		Str("target", target).
		Logger()

	decision := DecideNavigation(target, g.trusted)
	if decision == entity.NavigationStay {
		return decision
	}

	if !url.IsDelegableScheme(target) {
		log.Debug().Msg("navigation blocked")
		return decision
	}
	if g.opener == nil {
		log.Debug().Msg("no external handler, navigation blocked")
		return decision
	}
	if err := g.opener.Open(ctx, target); err != nil {
		log.Debug().Err(err).Msg("external handler failed")
		return decision
	}
	log.Debug().Msg("navigation delegated to external handler")
	return decision
}

// OnPageLanded is called when a page finished loading.
func (g *NavigationGate) OnPageLanded(ctx context.Context, landed string) entity.LandingDecision {
	log := logging.FromContext(ctx).With().
		Str("component", "navigation-gate").
		Str("url", landed).
		Logger()

	decision := DecidePageLanded(landed, g.trusted, g.fallbackPage)
	switch decision {
	case entity.LandingOK:
		g.exposed.Store(true)
		g.surface.EvaluateScript(ctx, BridgeMarkerScript)
		for _, fn := range g.landed {
			fn(ctx)
		}
	case entity.LandingIgnore:
		g.exposed.Store(false)
	default:
		g.exposed.Store(false)
		log.Debug().Msg("untrusted page landed, showing fallback")
		if url.IsWebScheme(landed) && g.opener != nil {
			if err := g.opener.Open(ctx, landed); err != nil {
				log.Debug().Err(err).Msg("external handler failed")
			}
		}
		g.surface.LoadURL(ctx, g.fallbackPage)
	}
	return decision
}

// OnTransportError is called when a load fails before any page landed.
// Only main frame failures replace the page.
func (g *NavigationGate) OnTransportError(ctx context.Context, isMainFrame bool) {
	if !isMainFrame {
		return
	}
	logging.FromContext(ctx).Debug().
		Str("component", "navigation-gate").
		Msg("main frame failed to load, showing fallback")
	g.exposed.Store(false)
	g.surface.LoadURL(ctx, g.fallbackPage)
}

// Reset hides the bridge until the next trusted landing.
func (g *NavigationGate) Reset() {
	g.exposed.Store(false)
}
