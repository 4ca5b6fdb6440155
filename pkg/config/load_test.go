package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadConfig_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "mcbackup.yaml")

	configContent := `
server:
  service: "minecraft@creative.service"
  data_dir: "/srv/creative/current"
  port: 25566

backups:
  root_dir: "/srv/creative/backups"
  daily:
    cadence: "24h"
    tolerance: "15m"
    retention: "48h"

telemetry:
  logging:
    level: "debug"
    format: "json"
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.Service != "minecraft@creative.service" {
		t.Errorf("expected service %q, got %q", "minecraft@creative.service", cfg.Server.Service)
	}
	if cfg.Server.Port != 25566 {
		t.Errorf("expected port 25566, got %d", cfg.Server.Port)
	}
	if cfg.Backups.Daily.Tolerance != 15*time.Minute {
		t.Errorf("expected daily tolerance %v, got %v", 15*time.Minute, cfg.Backups.Daily.Tolerance)
	}
	if cfg.Backups.Daily.Retention != 48*time.Hour {
		t.Errorf("expected daily retention %v, got %v", 48*time.Hour, cfg.Backups.Daily.Retention)
	}
	if cfg.Telemetry.Logging.Level != "debug" {
		t.Errorf("expected logging level %q, got %q", "debug", cfg.Telemetry.Logging.Level)
	}

	// Unset fields still pick up defaults, including root-derived paths.
	if cfg.Server.RconScript != DefaultRconScript {
		t.Errorf("expected default rcon script, got %q", cfg.Server.RconScript)
	}
	wantDailyDir := filepath.Join("/srv/creative/backups", DailyDirName)
	if cfg.Backups.Daily.Directory != wantDailyDir {
		t.Errorf("expected daily directory %q, got %q", wantDailyDir, cfg.Backups.Daily.Directory)
	}
	if cfg.Backups.Weekly.Cadence != DefaultWeeklyCadence {
		t.Errorf("expected default weekly cadence, got %v", cfg.Backups.Weekly.Cadence)
	}
}

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("failed to load default config: %v", err)
	}

	if cfg.Server.Service != DefaultService {
		t.Errorf("expected default service, got %q", cfg.Server.Service)
	}
	if cfg.Backups.RootDir != DefaultBackupsRoot {
		t.Errorf("expected default backup root, got %q", cfg.Backups.RootDir)
	}
	if cfg.Backups.Monthly.Retention != DefaultMonthlyRetention {
		t.Errorf("expected default monthly retention, got %v", cfg.Backups.Monthly.Retention)
	}
	if cfg.History.Path != filepath.Join(DefaultBackupsRoot, DefaultHistoryFile) {
		t.Errorf("unexpected default history path %q", cfg.History.Path)
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig("/nonexistent/mcbackup.yaml")
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
	if !strings.Contains(err.Error(), "no such file or directory") {
		t.Errorf("expected file not found error, got: %v", err)
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "mcbackup.yaml")

	malformedContent := `
server:
  service: "minecraft-server.service"
  invalid yaml here: [
`

	if err := os.WriteFile(configPath, []byte(malformedContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadConfig_ValidationFailure(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "mcbackup.yaml")

	invalidContent := `
backups:
  daily:
    cadence: "1h"
    tolerance: "2h"

telemetry:
  logging:
    level: "verbose"
`

	if err := os.WriteFile(configPath, []byte(invalidContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "tolerance must be smaller than cadence") {
		t.Errorf("expected tolerance error, got: %v", err)
	}
	if !strings.Contains(err.Error(), "invalid log level") {
		t.Errorf("expected log level error, got: %v", err)
	}
}

func TestLoadConfigWithEnvOverrides(t *testing.T) {
	t.Setenv("MCBACKUP_SERVER_SERVICE", "minecraft@survival.service")
	t.Setenv("MCBACKUP_BACKUPS_DAILY_RETENTION", "72h")
	t.Setenv("MCBACKUP_LOGGING_FORMAT", "json")
	t.Setenv("MCBACKUP_SERVER_PORT", "25570")

	cfg, err := LoadConfigWithEnvOverrides("")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.Service != "minecraft@survival.service" {
		t.Errorf("expected env-overridden service, got %q", cfg.Server.Service)
	}
	if cfg.Backups.Daily.Retention != 72*time.Hour {
		t.Errorf("expected env-overridden retention, got %v", cfg.Backups.Daily.Retention)
	}
	if cfg.Telemetry.Logging.Format != "json" {
		t.Errorf("expected env-overridden format, got %q", cfg.Telemetry.Logging.Format)
	}
	if cfg.Server.Port != 25570 {
		t.Errorf("expected env-overridden port, got %d", cfg.Server.Port)
	}
}

func TestLoadConfigWithEnvOverrides_InvalidValueIgnored(t *testing.T) {
	t.Setenv("MCBACKUP_BACKUPS_DAILY_CADENCE", "not-a-duration")

	cfg, err := LoadConfigWithEnvOverrides("")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Backups.Daily.Cadence != DefaultDailyCadence {
		t.Errorf("expected default cadence for unparseable override, got %v", cfg.Backups.Daily.Cadence)
	}
}

func TestLoadConfigWithEnvOverrides_RevalidatesAfterOverride(t *testing.T) {
	t.Setenv("MCBACKUP_LOGGING_LEVEL", "verbose")

	_, err := LoadConfigWithEnvOverrides("")
	if err == nil {
		t.Fatal("expected validation error after env override")
	}
	if !strings.Contains(err.Error(), "after environment overrides") {
		t.Errorf("expected override validation error, got: %v", err)
	}
}
