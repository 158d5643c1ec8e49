package entity

// The zero value of every decision type below is its most restrictive
// outcome, so an unset or failed decision never opens anything up.

// TrustDecision is the outcome of a certificate error on a navigation.
type TrustDecision int

const (
	// TrustReject cancels the load without asking.
	TrustReject TrustDecision = iota
	// TrustPrompt asks the user whether to proceed this one time.
	TrustPrompt
)

func (d TrustDecision) String() string {
	if d == TrustPrompt {
		return "prompt"
	}
	return "reject"
}

// NavigationDecision says whether a navigation stays in the surface.
type NavigationDecision int

const (
	// NavigationDelegate blocks the load in the surface. Web and mail links are
	// handed to the OS; everything else is dropped.
	NavigationDelegate NavigationDecision = iota
	// NavigationStay lets the surface load the target itself.
	NavigationStay
)

func (d NavigationDecision) String() string {
	if d == NavigationStay {
		return "stay"
	}
	return "delegate"
}

// LandingDecision is evaluated once a page has finished loading.
type LandingDecision int

const (
	// LandingFallback steers the surface to the local error page.
	LandingFallback LandingDecision = iota
	// LandingOK keeps the page and exposes the bridge to it.
	LandingOK
	// LandingIgnore leaves internal about: pages alone without exposing the bridge.
	LandingIgnore
)

func (d LandingDecision) String() string {
	switch d {
	case LandingOK:
		return "ok"
	case LandingIgnore:
		return "ignore"
	default:
		return "fallback"
	}
}
