package config

import (
	"strconv"

	"github.com/shadowflee/fluxer/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionDatabase      = "Database"
	SectionLogging       = "Logging"
	SectionShell         = "Shell"
	SectionDownloads     = "Downloads"
	SectionNotifications = "Notifications"
	SectionAppearance    = "Appearance"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 20)
	keys = append(keys, p.getDatabaseKeys()...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getShellKeys(defaults)...)
	keys = append(keys, p.getDownloadsKeys(defaults)...)
	keys = append(keys, p.getNotificationsKeys(defaults)...)
	keys = append(keys, p.getAppearanceKeys(defaults)...)
	return keys
}

func (*SchemaProvider) getDatabaseKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "database.path",
			Type:        "string",
			Default:     "",
			Description: "Preference database file (empty: $XDG_DATA_HOME/fluxer/fluxer.sqlite)",
			Section:     SectionDatabase,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Minimum log level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format on stderr",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.enable_file_log",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Logging.EnableFileLog),
			Description: "Also write JSON logs to a rotated file",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.log_dir",
			Type:        "string",
			Default:     defaults.Logging.LogDir,
			Description: "Directory for log files",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_size_mb",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Logging.MaxSizeMB),
			Description: "Rotate the log file past this size",
			Range:       "0+",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_backups",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Logging.MaxBackups),
			Description: "Rotated files to keep",
			Range:       "0+",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_age",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Logging.MaxAge),
			Description: "Days to keep rotated files",
			Range:       "0+",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.compress",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Logging.Compress),
			Description: "Gzip rotated files",
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getShellKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "shell.fallback_page",
			Type:        "string",
			Default:     defaults.Shell.FallbackPage,
			Description: "file:// page shown when the server is unreachable (empty: bundled page)",
			Section:     SectionShell,
		},
		{
			Key:         "shell.deep_link_scheme",
			Type:        "string",
			Default:     defaults.Shell.DeepLinkScheme,
			Description: "Custom URL scheme routed into the web app",
			Section:     SectionShell,
		},
		{
			Key:         "shell.share_text_limit",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Shell.ShareTextLimit),
			Description: "Maximum characters of shared text handed to the page",
			Range:       "1-" + strconv.Itoa(maxShareTextLimit),
			Section:     SectionShell,
		},
		{
			Key:         "shell.channel_display_name",
			Type:        "string",
			Default:     defaults.Shell.ChannelDisplayName,
			Description: "Name of the notification channel shown in system settings",
			Section:     SectionShell,
		},
	}
}

func (*SchemaProvider) getDownloadsKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "downloads.directory",
			Type:        "string",
			Default:     "",
			Description: "Download destination (empty: $XDG_DOWNLOAD_DIR or ~/Downloads)",
			Section:     SectionDownloads,
		},
		{
			Key:         "downloads.user_agent",
			Type:        "string",
			Default:     defaults.Downloads.UserAgent,
			Description: "User-Agent used when the page supplies none",
			Section:     SectionDownloads,
		},
		{
			Key:         "downloads.retry_max",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Downloads.RetryMax),
			Description: "Retries for a failed transfer",
			Range:       "0-" + strconv.Itoa(maxDownloadRetries),
			Section:     SectionDownloads,
		},
	}
}

func (*SchemaProvider) getNotificationsKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "notifications.app_name",
			Type:        "string",
			Default:     defaults.Notifications.AppName,
			Description: "Application name sent to the notification server",
			Section:     SectionNotifications,
		},
		{
			Key:         "notifications.timeout_ms",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Notifications.TimeoutMs),
			Description: "Expiry in milliseconds (-1: server default, 0: never)",
			Range:       "-1-" + strconv.Itoa(maxNotificationWait),
			Section:     SectionNotifications,
		},
	}
}

func (*SchemaProvider) getAppearanceKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "appearance.color_scheme",
			Type:        "string",
			Default:     defaults.Appearance.ColorScheme,
			Description: "Terminal palette (default follows the desktop)",
			Values:      []string{"default", "prefer-dark", "prefer-light"},
			Section:     SectionAppearance,
		},
	}
}
