// Package config loads CLI configuration from an optional YAML file and
// GRIDCRAWL_* environment variables.
//
// Precedence, lowest first: built-in defaults, YAML file, environment.
// Command-line flags are applied on top by the caller.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "GRIDCRAWL"

// Config holds all CLI configuration.
type Config struct {
	Log    LogConfig    `yaml:"log" envconfig:"LOG"`
	Crawl  CrawlConfig  `yaml:"crawl" envconfig:"CRAWL"`
	Output OutputConfig `yaml:"output" envconfig:"OUTPUT"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development" envconfig:"DEVELOPMENT"`
}

// CrawlConfig holds detector configuration.
type CrawlConfig struct {
	Stagger    string `yaml:"stagger" envconfig:"STAGGER" validate:"oneof=flag strict resolve"`
	PrintAreas bool   `yaml:"print_areas" envconfig:"PRINT_AREAS"`
}

// OutputConfig holds serialization configuration.
type OutputConfig struct {
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=raw positional keyed summary"`
	Pretty bool   `yaml:"pretty" envconfig:"PRETTY"`
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "warn",
		},
		Crawl: CrawlConfig{
			Stagger: "flag",
		},
		Output: OutputConfig{
			Format: "keyed",
		},
	}
}

// Load builds the configuration. path may be empty to skip the YAML file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
