package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a manager reading config.toml from the XDG config
// directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerAt(configDir)
}

// NewManagerAt creates a manager reading config.toml from configDir.
func NewManagerAt(configDir string) (*Manager, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// FLUXER_SHELL_DEEP_LINK_SCHEME and friends map onto dotted keys.
	v.SetEnvPrefix("FLUXER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "FLUXER_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind FLUXER_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "FLUXER_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind FLUXER_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
	}, nil
}

// Load reads the configuration file, creating it with defaults when it does
// not exist, and validates the result.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := fillPaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = m.configFilePath()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := WriteConfigOrdered(DefaultConfig(), m.configFilePath()); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

// fillPaths resolves the path settings left empty to their XDG locations.
func fillPaths(config *Config) error {
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	if config.Downloads.Directory == "" {
		dir, err := GetDownloadDir()
		if err != nil {
			return fmt.Errorf("failed to get download directory: %w", err)
		}
		config.Downloads.Directory = dir
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Shell.DeepLinkScheme = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(config.Shell.DeepLinkScheme), ":"))
	config.Shell.ChannelDisplayName = strings.TrimSpace(config.Shell.ChannelDisplayName)
	if config.Shell.ChannelDisplayName == "" {
		config.Shell.ChannelDisplayName = defaultChannelDisplayName
	}
	if config.Shell.ShareTextLimit == 0 {
		config.Shell.ShareTextLimit = defaultShareTextLimit
	}
	config.Appearance.ColorScheme = strings.ToLower(strings.TrimSpace(config.Appearance.ColorScheme))
	if config.Appearance.ColorScheme == "" {
		config.Appearance.ColorScheme = defaultColorScheme
	}
	config.Downloads.Directory = expandHome(config.Downloads.Directory)
	config.Database.Path = expandHome(config.Database.Path)
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.configFilePath()
}

func (m *Manager) configFilePath() string {
	return filepath.Join(m.configDir, "config.toml")
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("database.path", defaults.Database.Path)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)

	m.viper.SetDefault("shell.fallback_page", defaults.Shell.FallbackPage)
	m.viper.SetDefault("shell.deep_link_scheme", defaults.Shell.DeepLinkScheme)
	m.viper.SetDefault("shell.share_text_limit", defaults.Shell.ShareTextLimit)
	m.viper.SetDefault("shell.channel_display_name", defaults.Shell.ChannelDisplayName)

	m.viper.SetDefault("downloads.directory", defaults.Downloads.Directory)
	m.viper.SetDefault("downloads.user_agent", defaults.Downloads.UserAgent)
	m.viper.SetDefault("downloads.retry_max", defaults.Downloads.RetryMax)

	m.viper.SetDefault("notifications.app_name", defaults.Notifications.AppName)
	m.viper.SetDefault("notifications.timeout_ms", defaults.Notifications.TimeoutMs)

	m.viper.SetDefault("appearance.color_scheme", defaults.Appearance.ColorScheme)
}
