// Package config loads the tracker configuration from ~/.tamstar/config.yaml
// with environment overrides. Configuration covers where state lives and how
// it is displayed; the tracked data itself persists through internal/storage.
package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/melusiness/tamstar/internal/log"
)

// Config represents the full tamstar configuration
type Config struct {
	// DataDir holds the state files; the config file lives there too
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"`

	// Backend is "file" or "sqlite"
	Backend string `yaml:"backend" mapstructure:"backend"`

	// Timezone is an IANA name; empty means the system timezone
	Timezone string `yaml:"timezone" mapstructure:"timezone"`

	// WeekStart is "sunday" or "monday"
	WeekStart string `yaml:"week_start" mapstructure:"week_start"`

	// Listen is the HTTP API address for tamstar serve
	Listen string `yaml:"listen" mapstructure:"listen"`

	// LogLevel is debug, info or error
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
}

// Normalize fills empty fields with defaults and folds enum fields to their
// canonical form, so downstream code never sees an unusable value.
func (c *Config) Normalize() {
	d := DefaultConfig()
	if c.DataDir == "" {
		c.DataDir = d.DataDir
	}
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	if c.Backend != "sqlite" {
		c.Backend = "file"
	}
	c.WeekStart = strings.ToLower(strings.TrimSpace(c.WeekStart))
	if c.WeekStart != "monday" {
		c.WeekStart = "sunday"
	}
	if c.Listen == "" {
		c.Listen = d.Listen
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
}

// FilePath returns the JSON state file location.
func (c *Config) FilePath() string {
	return filepath.Join(c.DataDir, "records.json")
}

// DBPath returns the SQLite database location.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "tamstar.db")
}

// Location resolves the configured timezone. An empty or unknown name falls
// back to the system timezone.
func (c *Config) Location() *time.Location {
	name := c.Timezone
	if name == "" || name == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error("unknown timezone in config, using system timezone", err, "timezone", name)
		return time.Local
	}
	return loc
}
