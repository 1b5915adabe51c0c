package config

import (
	"fmt"
	"os"
	"time"

	"github.com/mcuadros/go-defaults"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Output formats understood by the CLI.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Config holds application configuration
type Config struct {
	LogLevel     logrus.Level `yaml:"-"`
	LogLevelName string       `yaml:"log_level" default:"info"`
	OutputFormat string       `yaml:"output_format" default:"table"`
	// ProfilePath is a YAML attribute table profile; empty selects Table.
	ProfilePath string `yaml:"profile"`
	Table       string `yaml:"table" default:"battery"`
	Color       bool   `yaml:"color" default:"true"`
	// CaptureSize bounds the number of transmissions kept by simulations.
	CaptureSize uint32 `yaml:"capture_size" default:"64"`
}

// DefaultConfig returns default configuration values
func DefaultConfig() *Config {
	cfg := &Config{}
	defaults.SetDefaults(cfg)
	cfg.LogLevel = logrus.InfoLevel
	return cfg
}

// Load reads a YAML configuration file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values and resolves LogLevelName into LogLevel.
func (c *Config) Validate() error {
	if c.LogLevelName != "" {
		level, err := logrus.ParseLevel(c.LogLevelName)
		if err != nil {
			return err
		}
		c.LogLevel = level
	}

	switch c.OutputFormat {
	case FormatTable, FormatJSON:
	default:
		return fmt.Errorf("unknown output format %q (must be %s or %s)", c.OutputFormat, FormatTable, FormatJSON)
	}

	if c.CaptureSize == 0 {
		return fmt.Errorf("capture_size must be > 0")
	}
	return nil
}

// NewLogger creates a configured logger instance
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(c.LogLevel)

	// Use structured logging format
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	return logger
}
