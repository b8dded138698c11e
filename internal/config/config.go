// Package config loads runtime settings from environment variables or an
// optional .env file.
package config

import "github.com/spf13/viper"

// Config holds runtime settings for datekeeper.
//
// Remote.URL and Remote.Key jointly determine backend selection: both must be
// non-empty for the remote store to be chosen at startup (see
// storage.Select). Everything else has a sensible default.
type Config struct {
	Remote   RemoteConfig
	Database DatabaseConfig
	Guide    GuideConfig
	Logging  LoggingConfig
}

// RemoteConfig describes connectivity to the hosted REST backend.
type RemoteConfig struct {
	URL string
	Key string
}

// Configured reports whether both the endpoint and the access key are set.
func (c RemoteConfig) Configured() bool {
	return c.URL != "" && c.Key != ""
}

// DatabaseConfig describes the on-device store.
type DatabaseConfig struct {
	Path string
}

// GuideConfig describes the AI date-guide collaborator endpoint.
type GuideConfig struct {
	URL string
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level  string
	Format string // text|json
}

// Load reads configuration from environment variables, overlaid on defaults.
// A .env file in the working directory is read when present but is not
// required.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("DB_PATH", "datekeeper.db")
	v.SetDefault("GUIDE_URL", "https://toolkit.rork.com/text/llm/")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")

	// The .env file is optional.
	_ = v.ReadInConfig()

	cfg := &Config{
		Remote: RemoteConfig{
			URL: v.GetString("REMOTE_URL"),
			Key: v.GetString("REMOTE_API_KEY"),
		},
		Database: DatabaseConfig{
			Path: v.GetString("DB_PATH"),
		},
		Guide: GuideConfig{
			URL: v.GetString("GUIDE_URL"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	return cfg, nil
}
