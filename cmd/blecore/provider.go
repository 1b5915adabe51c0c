package main

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/srg/blecore/pkg/att"
	"github.com/srg/blecore/pkg/config"
	"github.com/srg/blecore/pkg/gatt"
)

// resolveProvider picks the attribute table to serve. A profile path, from the
// flag or the config file, wins over a built-in table name.
func resolveProvider(cfg *config.Config, profilePath, tableName string, logger *logrus.Logger) (att.Provider, error) {
	if profilePath == "" {
		profilePath = cfg.ProfilePath
	}
	if profilePath != "" {
		profile, err := gatt.LoadProfileFile(profilePath)
		if err != nil {
			return nil, err
		}
		table, err := profile.Table()
		if err != nil {
			return nil, fmt.Errorf("profile %s: %w", profilePath, err)
		}
		logger.WithFields(logrus.Fields{
			"profile":    profile.Name,
			"attributes": table.Len(),
		}).Debug("Loaded profile")
		return table, nil
	}

	if tableName == "" {
		tableName = cfg.Table
	}
	registry := gatt.DefaultRegistry()
	p, ok := registry.Lookup(tableName)
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownTable, tableName, registry.Names())
	}
	logger.WithField("table", tableName).Debug("Using built-in table")
	return p, nil
}

// parseHandle accepts decimal or 0x-prefixed hex handles.
func parseHandle(s string) (att.Handle, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return att.HandleInvalid, fmt.Errorf("%w %q: %v", ErrHandleSyntax, s, err)
	}
	return att.Handle(v), nil
}

// parseRange builds the requested handle range from flag values.
func parseRange(start, end string) (att.HandleRange, error) {
	s, err := parseHandle(start)
	if err != nil {
		return att.HandleRange{}, err
	}
	e, err := parseHandle(end)
	if err != nil {
		return att.HandleRange{}, err
	}
	return att.NewHandleRange(s, e)
}

func wantJSON(cfg *config.Config, jsonFlag bool) bool {
	return jsonFlag || cfg.OutputFormat == config.FormatJSON
}
