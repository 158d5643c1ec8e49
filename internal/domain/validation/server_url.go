package validation

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/shadowflee/fluxer/internal/domain/entity"
)

// User-facing messages for a refused server address.
const (
	MsgServerURLEmpty     = "Please enter a server URL."
	MsgServerURLTooLong   = "URL is too long."
	MsgServerURLScheme    = "URL must start with http:// or https://"
	MsgServerURLNoHost    = "URL must include a hostname."
	MsgServerURLMalformed = "Invalid URL."
)

// ValidateServerURL checks an address typed at setup and returns it trimmed.
// The error is always a *entity.ServerURLError.
func ValidateServerURL(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", &entity.ServerURLError{Message: MsgServerURLEmpty}
	}
	if utf8.RuneCountInString(value) > entity.MaxServerURLLength {
		return "", &entity.ServerURLError{Message: MsgServerURLTooLong}
	}

	parsed, err := url.Parse(value)
	if err != nil {
		return "", &entity.ServerURLError{Message: MsgServerURLMalformed}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", &entity.ServerURLError{Message: MsgServerURLScheme}
	}
	if strings.TrimSpace(parsed.Hostname()) == "" {
		return "", &entity.ServerURLError{Message: MsgServerURLNoHost}
	}
	return value, nil
}

// IsUsableServerURL reports whether a stored address can be loaded.
// It is looser than ValidateServerURL: only the scheme is checked.
func IsUsableServerURL(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return parsed.Scheme == "http" || parsed.Scheme == "https"
}
