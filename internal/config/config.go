package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"moviezone/internal/domain"
)

const (
	appName   = "moviezone"
	fileName  = "config.toml"
	envPrefix = "MOVIEZONE"
)

// Dir returns the moviezone config directory
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, appName)
}

// DefaultPath returns where the config file lives when --config is not given
func DefaultPath() string {
	return filepath.Join(Dir(), fileName)
}

// Load loads the configuration from path, or from DefaultPath when path is
// empty. A missing file is not an error: defaults and environment apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// defaults always decode
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Save writes the configuration as TOML
func Save(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog.base_url", "https://movie-app-sace.onrender.com")
	v.SetDefault("catalog.timeout_seconds", 15)
	v.SetDefault("catalog.user_agent", "moviezone/1.0")

	v.SetDefault("images.base_url", "https://image.tmdb.org/t/p/w500")
	v.SetDefault("images.placeholder_url", "https://via.placeholder.com/500x750")

	v.SetDefault("ui.default_category", domain.TrendingKey)
	v.SetDefault("ui.alt_screen", true)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", filepath.Join(Dir(), appName+".log"))
}

// Validate re-checks a configuration after flag overrides
func (c *Config) Validate() error {
	return validate(c)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if err := validateURL("catalog.base_url", cfg.Catalog.BaseURL); err != nil {
		return err
	}
	if err := validateURL("images.base_url", cfg.Images.BaseURL); err != nil {
		return err
	}
	if err := validateURL("images.placeholder_url", cfg.Images.PlaceholderURL); err != nil {
		return err
	}

	if cfg.Catalog.TimeoutSeconds < 0 {
		return fmt.Errorf("catalog.timeout_seconds must not be negative: %d", cfg.Catalog.TimeoutSeconds)
	}

	if _, err := domain.ResolveCategory(cfg.UI.DefaultCategory); err != nil {
		return fmt.Errorf("ui.default_category: %w", err)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

func validateURL(key, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", key)
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s is not an absolute URL: %q", key, raw)
	}
	return nil
}
