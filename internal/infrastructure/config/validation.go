package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true,
	"error": true, "fatal": true, "panic": true, "disabled": true,
}

var validColorSchemes = map[string]bool{
	"default": true, "prefer-dark": true, "prefer-light": true, "dark": true, "light": true,
}

// RFC 3986 scheme syntax.
var schemePattern = regexp.MustCompile(`^[a-z][a-z0-9+.-]*$`)

// validateConfig collects every problem so the user can fix them in one go.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateShell(config)...)
	validationErrors = append(validationErrors, validateDownloads(config)...)
	validationErrors = append(validationErrors, validateNotifications(config)...)
	if !validColorSchemes[config.Appearance.ColorScheme] {
		validationErrors = append(validationErrors,
			fmt.Sprintf("appearance.color_scheme must be default, prefer-dark or prefer-light (got %q)", config.Appearance.ColorScheme))
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if !validLogLevels[config.Logging.Level] {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, fatal, panic, disabled (got %q)", config.Logging.Level))
	}
	if config.Logging.Format != "console" && config.Logging.Format != "json" {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}

func validateShell(config *Config) []string {
	var validationErrors []string

	if page := config.Shell.FallbackPage; page != "" {
		parsed, err := url.Parse(page)
		if err != nil || parsed.Scheme != "file" || parsed.Path == "" {
			validationErrors = append(validationErrors,
				fmt.Sprintf("shell.fallback_page must be a file:// URL (got %q)", page))
		}
	}

	scheme := config.Shell.DeepLinkScheme
	switch {
	case !schemePattern.MatchString(scheme):
		validationErrors = append(validationErrors,
			fmt.Sprintf("shell.deep_link_scheme must be a valid URL scheme (got %q)", scheme))
	case scheme == "http" || scheme == "https" || scheme == "file" || scheme == "about" || scheme == "javascript":
		validationErrors = append(validationErrors,
			fmt.Sprintf("shell.deep_link_scheme cannot be the reserved scheme %q", scheme))
	}

	if config.Shell.ShareTextLimit < 1 || config.Shell.ShareTextLimit > maxShareTextLimit {
		validationErrors = append(validationErrors,
			fmt.Sprintf("shell.share_text_limit must be between 1 and %d", maxShareTextLimit))
	}
	return validationErrors
}

func validateDownloads(config *Config) []string {
	if config.Downloads.RetryMax < 0 || config.Downloads.RetryMax > maxDownloadRetries {
		return []string{fmt.Sprintf("downloads.retry_max must be between 0 and %d", maxDownloadRetries)}
	}
	return nil
}

func validateNotifications(config *Config) []string {
	var validationErrors []string
	if strings.TrimSpace(config.Notifications.AppName) == "" {
		validationErrors = append(validationErrors, "notifications.app_name cannot be empty")
	}
	if config.Notifications.TimeoutMs < -1 || config.Notifications.TimeoutMs > maxNotificationWait {
		validationErrors = append(validationErrors,
			fmt.Sprintf("notifications.timeout_ms must be -1 or between 0 and %d", maxNotificationWait))
	}
	return validationErrors
}
