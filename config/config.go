package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Environment variables that override the file.
const (
	EnvListen   = "UZSKAITE_LISTEN"
	EnvLogLevel = "UZSKAITE_LOG_LEVEL"
)

// Config is the application configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Roster RosterConfig `toml:"roster"`
	Log    LogConfig    `toml:"log"`
}

// ServerConfig configures the upload server.
type ServerConfig struct {
	Listen          string `toml:"listen"`
	BodyLimitMB     int    `toml:"body_limit_mb"`
	MaxInFlight     int64  `toml:"max_in_flight"`
	ShutdownTimeout string `toml:"shutdown_timeout"`
}

// RosterConfig configures roster generation.
type RosterConfig struct {
	Country string `toml:"country"` // holiday calendar, ISO 3166 alpha-2
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `toml:"level"`  // debug|info|warn|error
	Format string `toml:"format"` // text|json
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Listen:          ":8080",
			BodyLimitMB:     10,
			MaxInFlight:     4,
			ShutdownTimeout: "10s",
		},
		Roster: RosterConfig{
			Country: "LV",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the TOML file at path on top of Default and applies environment
// overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv(EnvListen); v != "" {
		cfg.Server.Listen = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Server.Listen == "" {
		return errors.New("server.listen is empty")
	}
	if c.Server.BodyLimitMB <= 0 {
		return fmt.Errorf("server.body_limit_mb must be positive, got %d", c.Server.BodyLimitMB)
	}
	if c.Server.MaxInFlight <= 0 {
		return fmt.Errorf("server.max_in_flight must be positive, got %d", c.Server.MaxInFlight)
	}
	if _, err := c.Server.Shutdown(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Roster.Country) == "" {
		return errors.New("roster.country is empty")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q is not one of text, json", c.Log.Format)
	}
	return nil
}

// BodyLimit returns the upload size limit in bytes.
func (s ServerConfig) BodyLimit() int {
	return s.BodyLimitMB << 20
}

// Shutdown parses ShutdownTimeout.
func (s ServerConfig) Shutdown() (time.Duration, error) {
	d, err := time.ParseDuration(s.ShutdownTimeout)
	if err != nil {
		return 0, fmt.Errorf("server.shutdown_timeout: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("server.shutdown_timeout must be positive, got %s", d)
	}
	return d, nil
}
