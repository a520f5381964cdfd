// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	LogLevel                string        `mapstructure:"LOG_LEVEL"`
	HTTPAddr                string        `mapstructure:"HTTP_ADDR"`
	DBURL                   string        `mapstructure:"DB_URL"`
	GithubToken             string        `mapstructure:"GITHUB_TOKEN"`
	ProfilesToTrack         []string      `mapstructure:"PROFILES_TO_TRACK"`
	SyncInterval            time.Duration `mapstructure:"SYNC_INTERVAL"`
	LanguageFetchDepth      int           `mapstructure:"LANGUAGE_FETCH_DEPTH"`
	FetchConcurrency        int           `mapstructure:"FETCH_CONCURRENCY"`
	GithubRequestsPerSecond float64       `mapstructure:"GITHUB_REQUESTS_PER_SECOND"`
}

var keys = []string{
	"LOG_LEVEL",
	"HTTP_ADDR",
	"DB_URL",
	"GITHUB_TOKEN",
	"PROFILES_TO_TRACK",
	"SYNC_INTERVAL",
	"LANGUAGE_FETCH_DEPTH",
	"FETCH_CONCURRENCY",
	"GITHUB_REQUESTS_PER_SECOND",
}

// LoadConfig reads configuration from file and/or environment variables.
func LoadConfig() (*Config, error) {
	return load(viper.New(), ".")
}

func load(v *viper.Viper, configPath string) (*Config, error) {
	// Set default values
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("SYNC_INTERVAL", "1h")
	v.SetDefault("LANGUAGE_FETCH_DEPTH", 20)
	v.SetDefault("FETCH_CONCURRENCY", 5)
	v.SetDefault("GITHUB_REQUESTS_PER_SECOND", 10)

	// Load from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(configPath)
	_ = v.ReadInConfig() // Ignore error if file not found

	// Bind environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.ProfilesToTrack = splitList(cfg.ProfilesToTrack)

	// Validate required fields
	if cfg.DBURL == "" {
		return nil, errors.New("DB_URL is a required configuration field")
	}
	if cfg.SyncInterval <= 0 {
		return nil, errors.New("SYNC_INTERVAL must be a positive duration")
	}
	if cfg.LanguageFetchDepth < 0 {
		return nil, errors.New("LANGUAGE_FETCH_DEPTH must not be negative")
	}
	if cfg.FetchConcurrency <= 0 {
		return nil, errors.New("FETCH_CONCURRENCY must be positive")
	}
	if cfg.GithubRequestsPerSecond <= 0 {
		return nil, errors.New("GITHUB_REQUESTS_PER_SECOND must be positive")
	}

	return &cfg, nil
}

// splitList flattens comma separated entries, as environment variables
// carry lists as a single string.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.FieldsFunc(item, func(r rune) bool { return r == ',' || r == ' ' }) {
			out = append(out, part)
		}
	}
	return out
}
