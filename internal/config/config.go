package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Search  SearchConfig
	Stream  StreamConfig
	History HistoryConfig
}

// SearchConfig holds catalog search settings
type SearchConfig struct {
	BaseURL        string
	UserAgent      string
	TimeoutSeconds int
	CacheSize      int
}

// StreamConfig holds stream URL derivation settings
type StreamConfig struct {
	// URLTemplate is a printf-style template with a single %s placeholder
	// for the track identifier. The default tracks SoundCloud's known
	// streaming endpoint and may need adjustment when the service changes.
	URLTemplate string
}

// HistoryConfig holds search history settings
type HistoryConfig struct {
	Path string
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	configDir := getConfigDir()
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// Set defaults
	v.SetDefault("search.base_url", "https://soundcloud.com")
	v.SetDefault("search.user_agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36")
	v.SetDefault("search.timeout_seconds", 10)
	v.SetDefault("search.cache_size", 100)
	v.SetDefault("stream.url_template", "https://api.soundcloud.com/tracks/%s/stream")
	v.SetDefault("history.path", filepath.Join(getDataDir(), "history.db"))

	// Read config file (optional - don't fail if missing)
	_ = v.ReadInConfig()

	// Read from environment variables (e.g. STRUM_SEARCH_BASE_URL)
	v.SetEnvPrefix("STRUM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Map config to struct
	cfg := &Config{
		Search: SearchConfig{
			BaseURL:        v.GetString("search.base_url"),
			UserAgent:      v.GetString("search.user_agent"),
			TimeoutSeconds: v.GetInt("search.timeout_seconds"),
			CacheSize:      v.GetInt("search.cache_size"),
		},
		Stream: StreamConfig{
			URLTemplate: v.GetString("stream.url_template"),
		},
		History: HistoryConfig{
			Path: v.GetString("history.path"),
		},
	}

	return cfg, nil
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "strum")

	// Create config directory if it doesn't exist
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

// getDataDir returns the data directory path, creating it if needed
func getDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	dataDir := filepath.Join(homeDir, ".local", "share", "strum")
	_ = os.MkdirAll(dataDir, 0755)

	return dataDir
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}

// Save writes configuration to file
func (c *Config) Save() error {
	v := viper.New()

	// Set config file path
	configDir := getConfigDir()
	configFile := filepath.Join(configDir, "config.yaml")

	// Set values in viper
	v.Set("search.base_url", c.Search.BaseURL)
	v.Set("search.user_agent", c.Search.UserAgent)
	v.Set("search.timeout_seconds", c.Search.TimeoutSeconds)
	v.Set("search.cache_size", c.Search.CacheSize)
	v.Set("stream.url_template", c.Stream.URLTemplate)
	v.Set("history.path", c.History.Path)

	// Write to file
	return v.WriteConfigAs(configFile)
}
