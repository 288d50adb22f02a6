// Package config loads herald's runtime configuration from environment
// variables, falling back to defaults for any unset values.
package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config holds all process configuration.
type Config struct {
	RequirementsPath string
	PromosPath       string
	AllowlistPath    string

	MatchLogEnabled bool
	MatchLogPath    string

	SelfAuthorID  string
	ProbeAuthorID string
}

// DefaultConfig returns a Config with sensible defaults. The match log
// is disabled by default.
func DefaultConfig() Config {
	return Config{
		RequirementsPath: "./data/tcRequirements.txt",
		PromosPath:       "./data/giftCodes.txt",
		AllowlistPath:    "./data/channelIDs.txt",
		MatchLogEnabled:  false,
	}
}

// Load reads configuration from HERALD_* environment variables over
// DefaultConfig. MatchLogPath defaults to ~/.herald/herald.db when the
// log is enabled and no path is given.
func Load() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("HERALD_REQUIREMENTS"); v != "" {
		cfg.RequirementsPath = v
	}
	if v := os.Getenv("HERALD_GIFT_CODES"); v != "" {
		cfg.PromosPath = v
	}
	if v := os.Getenv("HERALD_CHANNELS"); v != "" {
		cfg.AllowlistPath = v
	}
	if v := os.Getenv("HERALD_MATCH_LOG_ENABLED"); v != "" {
		cfg.MatchLogEnabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("HERALD_MATCH_LOG_PATH"); v != "" {
		cfg.MatchLogPath = v
	}
	if v := os.Getenv("HERALD_SELF_AUTHOR_ID"); v != "" {
		cfg.SelfAuthorID = v
	}
	if v := os.Getenv("HERALD_PROBE_AUTHOR_ID"); v != "" {
		cfg.ProbeAuthorID = v
	}

	if cfg.MatchLogEnabled && cfg.MatchLogPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.MatchLogPath = filepath.Join(home, ".herald", "herald.db")
		}
	}

	return cfg
}
