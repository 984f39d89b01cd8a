// Package config loads server settings from the environment
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/battle-api/internal/errors"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds the server settings. Every field can be overridden by a server flag.
type Config struct {
	Port      int    `env:"BATTLE_API_PORT"       envDefault:"50051"`
	RedisAddr string `env:"BATTLE_API_REDIS_ADDR"`
	MaxTurns  int    `env:"BATTLE_API_MAX_TURNS"  envDefault:"1000"`
	LogLevel  string `env:"BATTLE_API_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"BATTLE_API_LOG_FORMAT" envDefault:"text"`
	IDStyle   string `env:"BATTLE_API_ID_STYLE"   envDefault:"sequential"`
	SeedFile  string `env:"BATTLE_API_SEED_FILE"`

	// RNGSeed of zero selects the crypto dice roller
	RNGSeed uint64 `env:"BATTLE_API_RNG_SEED" envDefault:"0"`

	// OTelEndpoint is an OTLP/HTTP collector address; empty disables export
	OTelEndpoint string `env:"BATTLE_API_OTEL_ENDPOINT"`
}

// Load parses the environment into a Config with defaults applied
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("Port", c.Port, 1, 65535, vb)
	errors.ValidateMin("MaxTurns", c.MaxTurns, 1, vb)

	if _, err := ParseLevel(c.LogLevel); err != nil {
		vb.Field("LogLevel", err.Error())
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		vb.Field("LogFormat", "must be text or json")
	}
	switch c.IDStyle {
	case "sequential", "uuid":
	default:
		vb.Field("IDStyle", "must be sequential or uuid")
	}

	return vb.Build()
}

// ParseLevel maps debug, info, warn and error onto slog levels
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
	return l, nil
}

// NewLogger builds the process logger from the log settings
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
