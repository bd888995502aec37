package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/melusiness/tamstar/internal/log"
)

// Load reads the config file at path (empty means the default location) and
// applies environment overrides. It always returns a usable configuration:
// a missing or malformed file degrades to the defaults.
func Load(path string) *Config {
	cfg := DefaultConfig()

	if path == "" {
		path = ConfigPath()
	}
	if err := loadFile(path, cfg); err != nil && !os.IsNotExist(err) {
		log.Error("reading config failed, using defaults", err, "path", path)
		cfg = DefaultConfig()
	}

	applyEnv(cfg)
	cfg.Normalize()

	return cfg
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

// applyEnv lets TAMSTAR_* variables override individual file settings.
func applyEnv(cfg *Config) {
	if v := os.Getenv("TAMSTAR_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TAMSTAR_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("TAMSTAR_TIMEZONE"); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv("TAMSTAR_WEEK_START"); v != "" {
		cfg.WeekStart = v
	}
	if v := os.Getenv("TAMSTAR_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("TAMSTAR_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// ConfigPath returns the config file location: TAMSTAR_CONFIG when set,
// otherwise config.yaml in the default data directory.
func ConfigPath() string {
	if path := os.Getenv("TAMSTAR_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(DefaultDataDir(), "config.yaml")
}
