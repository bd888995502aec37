package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Backend != "file" {
		t.Errorf("Expected backend 'file', got '%s'", cfg.Backend)
	}

	if cfg.WeekStart != "sunday" {
		t.Errorf("Expected week start 'sunday', got '%s'", cfg.WeekStart)
	}

	if cfg.Listen != "127.0.0.1:8787" {
		t.Errorf("Expected listen '127.0.0.1:8787', got '%s'", cfg.Listen)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected log level 'info', got '%s'", cfg.LogLevel)
	}

	if cfg.DataDir == "" {
		t.Error("Expected a data directory")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	if cfg.Backend != "file" {
		t.Errorf("Expected backend 'file', got '%s'", cfg.Backend)
	}

	if cfg.WeekStart != "sunday" {
		t.Errorf("Expected week start 'sunday', got '%s'", cfg.WeekStart)
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `data_dir: /var/lib/tamstar
backend: sqlite
timezone: UTC
week_start: monday
listen: 127.0.0.1:9999
log_level: debug
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg := Load(path)

	if cfg.DataDir != "/var/lib/tamstar" {
		t.Errorf("Expected data dir '/var/lib/tamstar', got '%s'", cfg.DataDir)
	}

	if cfg.Backend != "sqlite" {
		t.Errorf("Expected backend 'sqlite', got '%s'", cfg.Backend)
	}

	if cfg.Timezone != "UTC" {
		t.Errorf("Expected timezone 'UTC', got '%s'", cfg.Timezone)
	}

	if cfg.WeekStart != "monday" {
		t.Errorf("Expected week start 'monday', got '%s'", cfg.WeekStart)
	}

	if cfg.Listen != "127.0.0.1:9999" {
		t.Errorf("Expected listen '127.0.0.1:9999', got '%s'", cfg.Listen)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level 'debug', got '%s'", cfg.LogLevel)
	}
}

func TestLoad_MalformedFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("backend: [unclosed"), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg := Load(path)

	if cfg.Backend != "file" {
		t.Errorf("Expected backend 'file', got '%s'", cfg.Backend)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("backend: file\nweek_start: sunday\n"), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	t.Setenv("TAMSTAR_BACKEND", "sqlite")
	t.Setenv("TAMSTAR_WEEK_START", "monday")
	t.Setenv("TAMSTAR_LISTEN", "0.0.0.0:8080")
	t.Setenv("TAMSTAR_DATA_DIR", "/srv/tamstar")

	cfg := Load(path)

	if cfg.Backend != "sqlite" {
		t.Errorf("Expected backend 'sqlite', got '%s'", cfg.Backend)
	}

	if cfg.WeekStart != "monday" {
		t.Errorf("Expected week start 'monday', got '%s'", cfg.WeekStart)
	}

	if cfg.Listen != "0.0.0.0:8080" {
		t.Errorf("Expected listen '0.0.0.0:8080', got '%s'", cfg.Listen)
	}

	if cfg.DataDir != "/srv/tamstar" {
		t.Errorf("Expected data dir '/srv/tamstar', got '%s'", cfg.DataDir)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		backend       string
		weekStart     string
		wantBackend   string
		wantWeekStart string
	}{
		{
			name:          "empty fields fall back",
			wantBackend:   "file",
			wantWeekStart: "sunday",
		},
		{
			name:          "case and whitespace are folded",
			backend:       " SQLite ",
			weekStart:     "MONDAY",
			wantBackend:   "sqlite",
			wantWeekStart: "monday",
		},
		{
			name:          "unknown values fall back",
			backend:       "postgres",
			weekStart:     "tuesday",
			wantBackend:   "file",
			wantWeekStart: "sunday",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Backend: tt.backend, WeekStart: tt.weekStart}
			cfg.Normalize()

			if cfg.Backend != tt.wantBackend {
				t.Errorf("Expected backend '%s', got '%s'", tt.wantBackend, cfg.Backend)
			}
			if cfg.WeekStart != tt.wantWeekStart {
				t.Errorf("Expected week start '%s', got '%s'", tt.wantWeekStart, cfg.WeekStart)
			}
			if cfg.DataDir == "" {
				t.Error("Expected a data directory after normalizing")
			}
		})
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv("TAMSTAR_CONFIG", "/etc/tamstar/config.yaml")

	if got := ConfigPath(); got != "/etc/tamstar/config.yaml" {
		t.Errorf("Expected the override path, got '%s'", got)
	}

	t.Setenv("TAMSTAR_CONFIG", "")
	t.Setenv("HOME", "/home/tester")

	if got := ConfigPath(); got != filepath.Join("/home/tester", ".tamstar", "config.yaml") {
		t.Errorf("Expected the default path, got '%s'", got)
	}
}

func TestWriteDefault(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}

	// Verify file was created
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Config file not created: %v", err)
	}

	// Read and verify content
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}

	contentStr := string(content)
	if !strings.Contains(contentStr, "backend: file") {
		t.Error("Expected 'backend: file' in config")
	}
	if !strings.Contains(contentStr, "week_start: sunday") {
		t.Error("Expected 'week_start: sunday' in config")
	}

	// The written file must load back cleanly
	cfg := Load(path)
	if cfg.Backend != "file" {
		t.Errorf("Expected backend 'file' after reload, got '%s'", cfg.Backend)
	}
	if cfg.DataDir != "~/.tamstar" {
		t.Errorf("Expected data dir '~/.tamstar' after reload, got '%s'", cfg.DataDir)
	}
}

func TestWriteDefault_CreatesParentDirectories(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Config file not created: %v", err)
	}
}

func TestStatePaths(t *testing.T) {
	t.Parallel()

	cfg := &Config{DataDir: "/data"}

	if got := cfg.FilePath(); got != filepath.Join("/data", "records.json") {
		t.Errorf("Expected the JSON path under the data dir, got '%s'", got)
	}

	if got := cfg.DBPath(); got != filepath.Join("/data", "tamstar.db") {
		t.Errorf("Expected the database path under the data dir, got '%s'", got)
	}
}

func TestLocation(t *testing.T) {
	t.Parallel()

	if got := (&Config{}).Location(); got != time.Local {
		t.Errorf("Expected the system timezone for an empty name, got %v", got)
	}

	if got := (&Config{Timezone: "UTC"}).Location(); got != time.UTC {
		t.Errorf("Expected UTC, got %v", got)
	}

	if got := (&Config{Timezone: "Nowhere/Invalid"}).Location(); got != time.Local {
		t.Errorf("Expected the system timezone for an unknown name, got %v", got)
	}
}
