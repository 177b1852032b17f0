// internal/config/config.go
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the dnascan-server settings. Zero values are filled from
// Default, so a partial YAML file overrides only what it names.
type Config struct {
	Listen              string `yaml:"listen"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
	MaxUploadBytes      int64  `yaml:"max_upload_bytes"`
	HistoryPath         string `yaml:"history_path"` // empty disables run history
	LogLevel            string `yaml:"log_level"`    // debug | info | warn | error
}

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{
		Listen:              ":8000",
		ReadTimeoutSeconds:  10,
		WriteTimeoutSeconds: 30,
		MaxUploadBytes:      8 << 20,
		LogLevel:            "info",
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Listen == "" {
		return fmt.Errorf("listen must not be empty")
	}
	if c.ReadTimeoutSeconds < 0 || c.WriteTimeoutSeconds < 0 {
		return fmt.Errorf("timeouts must be ≥ 0")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// ReadTimeout returns the read timeout as a duration.
func (c Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the write timeout as a duration.
func (c Config) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

// SlogLevel maps the configured log level onto slog.
func (c Config) SlogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log_level %q", c.LogLevel)
}
