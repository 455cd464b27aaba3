// Package config loads swname settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig is returned when a parsed value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds runtime settings. Every field has a usable default so an
// empty environment is valid.
type Config struct {
	CharLimit int    `env:"SWNAME_CHAR_LIMIT" envDefault:"64"`
	AltScreen bool   `env:"SWNAME_ALT_SCREEN" envDefault:"false"`
	LogFile   string `env:"SWNAME_LOG_FILE"`
	LogLevel  string `env:"SWNAME_LOG_LEVEL" envDefault:"info"`
}

// Load reads an optional .env file from the working directory, then parses
// the environment into a Config.
func Load() (Config, error) {
	// a missing .env is the normal case
	_ = godotenv.Load()
	return Parse(env.Options{})
}

// Parse parses the environment with opts and validates the result. Tests
// pass opts.Environment to avoid touching the process environment.
func Parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges that struct tags cannot express.
func (c Config) Validate() error {
	if c.CharLimit <= 0 {
		return fmt.Errorf("%w: SWNAME_CHAR_LIMIT must be positive, got %d", ErrInvalidConfig, c.CharLimit)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() slog.Level {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: unknown SWNAME_LOG_LEVEL %q", ErrInvalidConfig, s)
}
