// Package cli holds the configuration and logging setup shared by the
// example programs.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// ErrInvalidFormat is returned for log formats other than json, pretty or auto.
var ErrInvalidFormat = errors.New("invalid log format")

// Config is read from the environment. Command-line flags override it.
type Config struct {
	LogLevel  string `env:"PURELAMBDA_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"PURELAMBDA_LOG_FORMAT" envDefault:"auto"`
	NameCount int    `env:"PURELAMBDA_NAME_COUNT" envDefault:"30"`
}

// LoadConfig parses Config from the process environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks level and format.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "pretty", "auto":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.LogFormat)
	}
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return level
}
