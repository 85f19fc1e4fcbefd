// Package config provides configuration management.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"motor-premium/internal/errors"
	"motor-premium/internal/logging"
	"motor-premium/internal/metrics"
)

// EnvPrefix prefixes environment overrides. A double underscore separates
// nesting levels: MOTOR_PREMIUM_LOGGING__LEVEL=debug sets logging.level.
const EnvPrefix = "MOTOR_PREMIUM_"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" koanf:"version"`

	// Tariff contains reference table settings
	Tariff TariffConfig `json:"tariff" koanf:"tariff"`

	// Quote contains quoting settings
	Quote QuoteConfig `json:"quote" koanf:"quote"`

	// Metrics contains Prometheus settings
	Metrics metrics.Config `json:"metrics" koanf:"metrics"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" koanf:"logging"`
}

// TariffConfig contains reference table settings
type TariffConfig struct {
	// TablesPath is an HCL tariff file; empty uses the built-in tariff
	TablesPath string `json:"tables_path" koanf:"tables_path"`
}

// QuoteConfig contains quoting settings
type QuoteConfig struct {
	// Workers bounds concurrent quotes in a batch
	Workers int `json:"workers" koanf:"workers"`

	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format" koanf:"default_format"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Quote: QuoteConfig{
			Workers:       4,
			DefaultFormat: "cli",
		},
		Metrics: metrics.Config{
			Enabled:   true,
			Namespace: "motor_premium",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if c.Quote.Workers < 1 {
		return errors.Config(fmt.Sprintf("quote.workers must be at least 1, got %d", c.Quote.Workers), nil)
	}
	switch c.Quote.DefaultFormat {
	case "cli", "json":
	default:
		return errors.Config(fmt.Sprintf("unsupported quote.default_format %q", c.Quote.DefaultFormat), nil)
	}
	return nil
}

// Load loads configuration from a file, then applies environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			var parser koanf.Parser
			switch strings.ToLower(filepath.Ext(path)) {
			case ".yaml", ".yml":
				parser = yaml.Parser()
			case ".json":
				parser = koanfjson.Parser()
			default:
				return nil, errors.Config("unsupported config format: "+filepath.Ext(path), nil)
			}
			if err := k.Load(file.Provider(path), parser); err != nil {
				return nil, errors.Config("failed to read "+path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Config("failed to stat "+path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		return strings.ReplaceAll(strings.ToLower(s), "__", ".")
	}), nil); err != nil {
		return nil, errors.Config("failed to read environment", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Config("failed to decode configuration", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a file as JSON
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
