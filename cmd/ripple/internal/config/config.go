// Package config loads the optional ripple.yaml configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/go-ripple/ripple/pkg/counter"
)

// Config represents the optional ripple.yaml configuration.
type Config struct {
	Counter CounterConfig `yaml:"counter"`
	Log     LogConfig     `yaml:"log"`
}

// CounterConfig contains the initial counter state. Absent fields fall
// back to the model defaults.
type CounterConfig struct {
	InitialCount  *int64  `yaml:"initial_count,omitempty"`
	AutoIncrement *bool   `yaml:"auto_increment,omitempty"`
	IntervalMs    *uint64 `yaml:"interval_ms,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	InitialState counter.State
	LogLevel     zerolog.Level
}

// LoadOptional reads ripple.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "ripple.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read ripple.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse ripple.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads ripple.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	state := counter.DefaultState()
	if cfg.Counter.InitialCount != nil {
		state.Count = *cfg.Counter.InitialCount
	}
	if cfg.Counter.AutoIncrement != nil {
		state.AutoIncrementing = *cfg.Counter.AutoIncrement
	}
	if cfg.Counter.IntervalMs != nil {
		state.AutoIncrementInterval = counter.NewInterval(*cfg.Counter.IntervalMs)
	}

	level, err := logLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	return &Resolved{
		InitialState: state,
		LogLevel:     level,
	}, nil
}

func logLevel(name string) (zerolog.Level, error) {
	switch strings.TrimSpace(strings.ToLower(name)) {
	case "":
		return zerolog.InfoLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "trace":
		return zerolog.TraceLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q (expected error, warn, info, debug or trace)", name)
	}
}
