package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog" toml:"catalog"`
	Images  ImagesConfig  `mapstructure:"images" toml:"images"`
	UI      UIConfig      `mapstructure:"ui" toml:"ui"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging"`
}

// CatalogConfig holds the catalog API connection details
type CatalogConfig struct {
	BaseURL        string `mapstructure:"base_url" toml:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" toml:"timeout_seconds"`
	UserAgent      string `mapstructure:"user_agent" toml:"user_agent"`
}

// Timeout returns the per-request deadline
func (c CatalogConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ImagesConfig controls how poster paths become URLs
type ImagesConfig struct {
	BaseURL        string `mapstructure:"base_url" toml:"base_url"`
	PlaceholderURL string `mapstructure:"placeholder_url" toml:"placeholder_url"`
}

// UIConfig contains terminal UI settings
type UIConfig struct {
	DefaultCategory string `mapstructure:"default_category" toml:"default_category"`
	AltScreen       bool   `mapstructure:"alt_screen" toml:"alt_screen"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
	File   string `mapstructure:"file" toml:"file"`
}
