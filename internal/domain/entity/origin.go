package entity

import (
	"net"
	"strconv"
)

// PortUnresolved marks a port that cannot be derived from the scheme.
// Two unresolved ports never compare equal.
const PortUnresolved = -1

// Origin is the (scheme, host, port) tuple identifying a web trust domain.
// Scheme and Host are stored lower-cased.
type Origin struct {
	Scheme string
	Host   string
	Port   int
}

// IsZero returns true for the empty origin.
func (o Origin) IsZero() bool {
	return o.Scheme == "" && o.Host == "" && o.Port == 0
}

// IsWeb returns true for http and https origins.
func (o Origin) IsWeb() bool {
	return o.Scheme == "http" || o.Scheme == "https"
}

// Matches reports whether two origins identify the same trust domain.
func (o Origin) Matches(other Origin) bool {
	if o.Host == "" || other.Host == "" {
		return false
	}
	if o.Port == PortUnresolved || other.Port == PortUnresolved {
		return false
	}
	return o.Scheme == other.Scheme && o.Host == other.Host && o.Port == other.Port
}

// String renders the origin, omitting the scheme's default port.
func (o Origin) String() string {
	host := o.Host
	if ip := net.ParseIP(host); ip != nil && ip.To4() == nil {
		host = "[" + host + "]"
	}
	if o.Port == PortUnresolved || o.Port == DefaultPort(o.Scheme) {
		return o.Scheme + "://" + host
	}
	return o.Scheme + "://" + host + ":" + strconv.Itoa(o.Port)
}

// DefaultPort returns the implicit port for a scheme.
func DefaultPort(scheme string) int {
	switch scheme {
	case "https":
		return 443
	case "http":
		return 80
	default:
		return PortUnresolved
	}
}
