package config

// Default configuration constants
const (
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultMaxLogAgeDays = 7  // days
	defaultMaxLogSizeMB  = 10 // megabytes
	defaultMaxLogBackups = 3

	defaultDeepLinkScheme     = "fluxer"
	defaultShareTextLimit     = 4096 // characters
	defaultChannelDisplayName = "Fluxer"

	defaultDownloadRetryMax = 3
	defaultUserAgent        = "Mozilla/5.0 (X11; Linux x86_64) Fluxer"

	defaultNotificationAppName = "Fluxer"
	defaultNotificationTimeout = -1 // server decides

	defaultColorScheme = "default"

	maxShareTextLimit   = 1 << 20
	maxDownloadRetries  = 10
	maxNotificationWait = 600000 // ms
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxAge:     defaultMaxLogAgeDays,
			LogDir:     getDefaultLogDir(),
			MaxSizeMB:  defaultMaxLogSizeMB,
			MaxBackups: defaultMaxLogBackups,
			Compress:   true,
		},
		Shell: ShellConfig{
			DeepLinkScheme:     defaultDeepLinkScheme,
			ShareTextLimit:     defaultShareTextLimit,
			ChannelDisplayName: defaultChannelDisplayName,
		},
		Downloads: DownloadsConfig{
			UserAgent: defaultUserAgent,
			RetryMax:  defaultDownloadRetryMax,
		},
		Notifications: NotificationsConfig{
			AppName:   defaultNotificationAppName,
			TimeoutMs: defaultNotificationTimeout,
		},
		Appearance: AppearanceConfig{
			ColorScheme: defaultColorScheme,
		},
	}
}
