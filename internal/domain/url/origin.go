package url

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/shadowflee/fluxer/internal/domain/entity"
)

var (
	// ErrNoHost is returned for URIs without an authority host.
	ErrNoHost = errors.New("uri has no host")
	// ErrEmptyURI is returned for blank input.
	ErrEmptyURI = errors.New("empty uri")
)

// ParseOrigin extracts the (scheme, host, port) tuple of a URI.
// Scheme and host are lower-cased; a missing port is resolved from the scheme
// and left as entity.PortUnresolved when the scheme has no default.
func ParseOrigin(raw string) (entity.Origin, error) {
	if strings.TrimSpace(raw) == "" {
		return entity.Origin{}, ErrEmptyURI
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return entity.Origin{}, err
	}
	host := parsed.Hostname()
	if host == "" {
		return entity.Origin{}, ErrNoHost
	}
	return entity.Origin{
		Scheme: strings.ToLower(parsed.Scheme),
		Host:   strings.ToLower(host),
		Port:   EffectivePort(parsed),
	}, nil
}

// EffectivePort returns the explicit port of u, or the scheme default.
func EffectivePort(u *url.URL) int {
	if p := u.Port(); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > 65535 {
			return entity.PortUnresolved
		}
		return n
	}
	return entity.DefaultPort(strings.ToLower(u.Scheme))
}

// SameOrigin reports whether candidate belongs to the same origin as reference.
// Any parse failure, missing host or unresolvable port yields false.
func SameOrigin(candidate, reference string) bool {
	ref, err := ParseOrigin(reference)
	if err != nil {
		return false
	}
	return SameOriginAs(candidate, ref)
}

// SameOriginAs compares candidate against an already parsed origin.
func SameOriginAs(candidate string, reference entity.Origin) bool {
	origin, err := ParseOrigin(candidate)
	if err != nil {
		return false
	}
	return origin.Matches(reference)
}

// ExtractOrigin returns the serialized origin of a URI.
func ExtractOrigin(raw string) (string, error) {
	origin, err := ParseOrigin(raw)
	if err != nil {
		return "", err
	}
	if origin.Scheme == "" {
		return "", ErrNoHost
	}
	return origin.String(), nil
}

// Scheme returns the lower-cased scheme of raw, or "" if it does not parse.
func Scheme(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.ToLower(parsed.Scheme)
}

// IsWebScheme returns true for http and https URIs.
func IsWebScheme(raw string) bool {
	switch Scheme(raw) {
	case "http", "https":
		return true
	}
	return false
}

// IsDelegableScheme returns true for schemes handed to the OS when a link
// leaves the trusted origin.
func IsDelegableScheme(raw string) bool {
	switch Scheme(raw) {
	case "http", "https", "mailto":
		return true
	}
	return false
}

// IsInternalPage returns true for about: pages.
func IsInternalPage(raw string) bool {
	return len(raw) >= 6 && strings.EqualFold(raw[:6], "about:")
}

// IsFallbackPage reports whether landed is the bundled fallback page,
// ignoring any query or fragment.
func IsFallbackPage(landed, fallback string) bool {
	if landed == "" || fallback == "" {
		return false
	}
	if i := strings.IndexAny(landed, "?#"); i >= 0 {
		landed = landed[:i]
	}
	return landed == fallback
}

// ReferencesHost reports whether the host of raw equals host, ignoring case.
func ReferencesHost(raw, host string) bool {
	if host == "" {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	h := parsed.Hostname()
	return h != "" && strings.EqualFold(h, host)
}
