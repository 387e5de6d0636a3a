package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/viperadnan-git/seeksim/internal/core/track"
)

// EnvPrefix namespaces every environment override.
const EnvPrefix = "SEEKSIM_"

type Config struct {
	Scheduler SchedulerConfig `koanf:"scheduler"`
	Logging   LoggingConfig   `koanf:"logging"`
}

type SchedulerConfig struct {
	Policy    string `koanf:"policy"`
	Direction string `koanf:"direction"`
}

type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Load reads defaults, then the TOML file (if provided), then env vars.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return nil, err
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("read %s: %w", configPath, err)
		}
	}

	// SEEKSIM_SCHEDULER_POLICY -> scheduler.policy. Empty values are
	// skipped so they don't mask the file.
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		return strings.Replace(
			strings.ToLower(strings.TrimPrefix(key, EnvPrefix)),
			"_", ".", 1,
		), value
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if _, err := track.ParsePolicy(c.Scheduler.Policy); err != nil {
		return fmt.Errorf("scheduler.policy: %w", err)
	}
	if _, err := track.ParseDirection(c.Scheduler.Direction); err != nil {
		return fmt.Errorf("scheduler.direction: %w", err)
	}
	switch c.Logging.Format {
	case "pretty", "json":
	default:
		return fmt.Errorf("logging.format: must be pretty or json, got %q", c.Logging.Format)
	}
	return nil
}

// Policy returns the configured default policy. Validate has already
// accepted it.
func (c *Config) Policy() track.Policy {
	p, _ := track.ParsePolicy(c.Scheduler.Policy)
	return p
}

func (c *Config) Direction() track.Direction {
	d, _ := track.ParseDirection(c.Scheduler.Direction)
	return d
}
