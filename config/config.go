// Package config loads genlru settings from YAML files and dotted-key bindings.
package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/on-the-ground/genlru/log"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	DefaultCapacity = 128
	DefaultFibN     = 1000
)

type Config struct {
	Cache Cache `yaml:"cache"`
	Log   Log   `yaml:"log"`
	Fib   Fib   `yaml:"fib"`
}

type Cache struct {
	Capacity int `yaml:"capacity"`
}

type Log struct {
	Level       log.LogLevel `yaml:"level"`
	Development bool         `yaml:"development"`
}

type Fib struct {
	N int `yaml:"n"`
}

func Default() Config {
	return Config{
		Cache: Cache{Capacity: DefaultCapacity},
		Log:   Log{Level: log.LogInfo},
		Fib:   Fib{N: DefaultFibN},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults. The result is not validated, so that later overrides can still
// fix it; call Validate once the final config is assembled.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// Apply overlays the bound keys onto c. All type errors are reported together.
func (c Config) Apply(b *Bindings) (Config, error) {
	level := string(c.Log.Level)
	err := multierr.Combine(
		bind(b, ConfigCacheCapacity, &c.Cache.Capacity),
		bind(b, ConfigLogLevel, &level),
		bind(b, ConfigLogDevelopment, &c.Log.Development),
		bind(b, ConfigFibN, &c.Fib.N),
	)
	c.Log.Level = log.LogLevel(level)
	return c, err
}

// Validate reports every invalid field.
func Validate(c Config) error {
	var err error
	if c.Cache.Capacity < 1 {
		err = multierr.Append(err, fmt.Errorf("%w: cache.capacity must be positive, got %d", ErrInvalidConfig, c.Cache.Capacity))
	}
	if _, lvlErr := c.Log.Level.ZapLevel(); lvlErr != nil {
		err = multierr.Append(err, fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, lvlErr))
	}
	if c.Fib.N < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: fib.n must not be negative, got %d", ErrInvalidConfig, c.Fib.N))
	}
	return err
}
