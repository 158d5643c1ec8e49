package config

// Config is the on-disk configuration of the shell.
type Config struct {
	Database      DatabaseConfig      `mapstructure:"database" yaml:"database" toml:"database"`
	Logging       LoggingConfig       `mapstructure:"logging" yaml:"logging" toml:"logging"`
	Shell         ShellConfig         `mapstructure:"shell" yaml:"shell" toml:"shell"`
	Downloads     DownloadsConfig     `mapstructure:"downloads" yaml:"downloads" toml:"downloads"`
	Notifications NotificationsConfig `mapstructure:"notifications" yaml:"notifications" toml:"notifications"`
	Appearance    AppearanceConfig    `mapstructure:"appearance" yaml:"appearance" toml:"appearance"`
}

// DatabaseConfig holds database configuration.
type DatabaseConfig struct {
	// Path to the sqlite file. Empty uses $XDG_DATA_HOME/fluxer/fluxer.sqlite.
	Path string `mapstructure:"path" yaml:"path" toml:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level"`
	Format string `mapstructure:"format" yaml:"format" toml:"format"`
	MaxAge int    `mapstructure:"max_age" yaml:"max_age" toml:"max_age"`

	// File output configuration
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups"`
	Compress      bool   `mapstructure:"compress" yaml:"compress" toml:"compress"`
}

// ShellConfig tunes the trust boundary around the web app.
type ShellConfig struct {
	// FallbackPage is the local page shown when the server cannot be reached
	// or the view lands somewhere untrusted. Empty uses the bundled page.
	FallbackPage string `mapstructure:"fallback_page" yaml:"fallback_page" toml:"fallback_page"`
	// DeepLinkScheme is the custom scheme routed into the web app.
	DeepLinkScheme string `mapstructure:"deep_link_scheme" yaml:"deep_link_scheme" toml:"deep_link_scheme"`
	// ShareTextLimit caps shared text, in characters, before injection.
	ShareTextLimit int `mapstructure:"share_text_limit" yaml:"share_text_limit" toml:"share_text_limit"`
	// ChannelDisplayName labels notification channels in system settings.
	ChannelDisplayName string `mapstructure:"channel_display_name" yaml:"channel_display_name" toml:"channel_display_name"`
}

// DownloadsConfig holds download configuration.
type DownloadsConfig struct {
	// Directory receives downloaded files. Empty uses $XDG_DOWNLOAD_DIR or ~/Downloads.
	Directory string `mapstructure:"directory" yaml:"directory" toml:"directory"`
	// UserAgent is sent when the page did not supply one.
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent" toml:"user_agent"`
	// RetryMax is the number of retries for a failed transfer.
	RetryMax int `mapstructure:"retry_max" yaml:"retry_max" toml:"retry_max"`
}

// AppearanceConfig holds terminal appearance settings.
type AppearanceConfig struct {
	// ColorScheme is "default" (follow the desktop), "prefer-dark" or
	// "prefer-light".
	ColorScheme string `mapstructure:"color_scheme" yaml:"color_scheme" toml:"color_scheme"`
}

// NotificationsConfig holds desktop notification configuration.
type NotificationsConfig struct {
	AppName string `mapstructure:"app_name" yaml:"app_name" toml:"app_name"`
	// TimeoutMs is passed to the notification server; -1 lets it decide.
	TimeoutMs int `mapstructure:"timeout_ms" yaml:"timeout_ms" toml:"timeout_ms"`
}
