package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Policy    PolicyConfig
	Settings  SettingsConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// PolicyConfig holds the graphing-mode policy collaborator configuration.
type PolicyConfig struct {
	Endpoint          string        `envconfig:"POLICY_ADDR" default:"http://localhost:7070"`
	Path              string        `envconfig:"POLICY_PATH" default:"/policies/education/allow-graphing"`
	Timeout           time.Duration `envconfig:"POLICY_TIMEOUT" default:"5s"`
	GraphingAvailable bool          `envconfig:"GRAPHING_AVAILABLE" default:"true"`
}

// SettingsConfig holds the persisted-selection store configuration.
type SettingsConfig struct {
	Path string `envconfig:"SETTINGS_PATH" default:"/tmp/omnicalc/settings.toml"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Policy: PolicyConfig{
			Endpoint:          "http://localhost:7070",
			Path:              "/policies/education/allow-graphing",
			Timeout:           5 * time.Second,
			GraphingAvailable: true,
		},
		Settings: SettingsConfig{
			Path: "/tmp/omnicalc/settings.toml",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
	}
}
