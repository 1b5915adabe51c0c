package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/srg/blecore/pkg/config"
)

// loadConfig returns the configuration selected by --config, or the defaults.
// A --log-level flag overrides the level from the file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if name, _ := cmd.Flags().GetString("log-level"); name != "" {
		switch name {
		case "debug", "info", "warn", "error":
		default:
			return nil, fmt.Errorf("%w: %s (must be debug, info, warn, or error)", ErrInvalidLogLevel, name)
		}
		cfg.LogLevelName = name
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// configureLogger creates a logger writing to the command's error stream.
func configureLogger(cmd *cobra.Command, cfg *config.Config) *logrus.Logger {
	logger := cfg.NewLogger()
	logger.SetOutput(cmd.ErrOrStderr())
	return logger
}
