package config

import (
	"log/slog"
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseMap(t *testing.T, vars map[string]string) (Config, error) {
	t.Helper()
	return Parse(env.Options{Environment: vars})
}

func TestParseDefaults(t *testing.T) {
	cfg, err := parseMap(t, map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, 64, cfg.CharLimit)
	assert.False(t, cfg.AltScreen)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestParseOverrides(t *testing.T) {
	cfg, err := parseMap(t, map[string]string{
		"SWNAME_CHAR_LIMIT": "32",
		"SWNAME_ALT_SCREEN": "true",
		"SWNAME_LOG_FILE":   "/tmp/swname.log",
		"SWNAME_LOG_LEVEL":  "DEBUG",
	})
	require.NoError(t, err)

	assert.Equal(t, 32, cfg.CharLimit)
	assert.True(t, cfg.AltScreen)
	assert.Equal(t, "/tmp/swname.log", cfg.LogFile)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"zero char limit", map[string]string{"SWNAME_CHAR_LIMIT": "0"}},
		{"negative char limit", map[string]string{"SWNAME_CHAR_LIMIT": "-4"}},
		{"non-numeric char limit", map[string]string{"SWNAME_CHAR_LIMIT": "lots"}},
		{"bad bool", map[string]string{"SWNAME_ALT_SCREEN": "maybe"}},
		{"unknown level", map[string]string{"SWNAME_LOG_LEVEL": "verbose"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseMap(t, tt.vars)
			assert.Error(t, err)
		})
	}
}

func TestValidateWrapsSentinel(t *testing.T) {
	err := Config{CharLimit: 0, LogLevel: "info"}.Validate()
	assert.ErrorIs(t, err, ErrInvalidConfig)

	err = Config{CharLimit: 10, LogLevel: "loud"}.Validate()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Config{LogLevel: tt.in}.Level())
		})
	}
}
