package config

import (
	"os"
	"path/filepath"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		DataDir:   DefaultDataDir(),
		Backend:   "file",
		Timezone:  "",
		WeekStart: "sunday",
		Listen:    "127.0.0.1:8787",
		LogLevel:  "info",
	}
}

// DefaultDataDir returns ~/.tamstar, or a relative .tamstar when the home
// directory cannot be resolved.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tamstar"
	}
	return filepath.Join(home, ".tamstar")
}

// WriteDefault writes a commented default configuration to path, creating
// parent directories as needed. The write is atomic.
func WriteDefault(path string) error {
	content := `# tamstar configuration

# Where state lives (records and database)
data_dir: ~/.tamstar

# Persistence backend: "file" (JSON) or "sqlite"
backend: file

# IANA timezone name; empty means the system timezone
timezone: ""

# First day of the calendar week: "sunday" or "monday"
week_start: sunday

# HTTP API address for tamstar serve
listen: 127.0.0.1:8787

# debug, info or error
log_level: info
`

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
