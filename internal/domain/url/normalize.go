// Package url provides origin and URL helpers for the shell.
package url

import (
	"net/url"
	"strings"
)

// DefaultDeepLinkScheme is the custom scheme the shell registers for links
// into the web app.
const DefaultDeepLinkScheme = "fluxer"

// Normalize trims surrounding whitespace and trailing slashes from a server
// address so that paths and fragments can be appended to it.
func Normalize(input string) string {
	return strings.TrimRight(strings.TrimSpace(input), "/")
}

// DeepLinkTarget converts a deep link such as fluxer://channel/123 into the
// in-app location <server>/#/channel/123. It returns false when link does not
// use scheme or does not parse.
func DeepLinkTarget(serverURL, link, scheme string) (string, bool) {
	if serverURL == "" {
		return "", false
	}
	if scheme == "" {
		scheme = DefaultDeepLinkScheme
	}
	parsed, err := url.Parse(strings.TrimSpace(link))
	if err != nil || !strings.EqualFold(parsed.Scheme, scheme) {
		return "", false
	}

	var route string
	switch {
	case parsed.Opaque != "":
		route = parsed.Opaque
	default:
		route = parsed.Host + parsed.EscapedPath()
	}
	route = strings.TrimLeft(route, "/")

	return Normalize(serverURL) + "/#/" + route, true
}

// ExtractDomain extracts the host from a URL string, without port.
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Hostname()
}
