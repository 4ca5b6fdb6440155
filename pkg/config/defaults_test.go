package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	var cfg Config
	ApplyDefaults(&cfg)

	if cfg.Server.Service != DefaultService {
		t.Errorf("expected default service, got %q", cfg.Server.Service)
	}
	if cfg.Server.DataDir != DefaultDataDir {
		t.Errorf("expected default data dir, got %q", cfg.Server.DataDir)
	}
	if cfg.Server.StopTimeout != DefaultStopTimeout {
		t.Errorf("expected default stop timeout, got %v", cfg.Server.StopTimeout)
	}

	tiers := []struct {
		name      string
		tier      TierConfig
		subdir    string
		cadence   time.Duration
		retention time.Duration
	}{
		{"daily", cfg.Backups.Daily, DailyDirName, DefaultDailyCadence, DefaultDailyRetention},
		{"weekly", cfg.Backups.Weekly, WeeklyDirName, DefaultWeeklyCadence, DefaultWeeklyRetention},
		{"monthly", cfg.Backups.Monthly, MonthlyDirName, DefaultMonthlyCadence, DefaultMonthlyRetention},
	}
	for _, tc := range tiers {
		t.Run(tc.name, func(t *testing.T) {
			wantDir := filepath.Join(DefaultBackupsRoot, tc.subdir)
			if tc.tier.Directory != wantDir {
				t.Errorf("expected directory %q, got %q", wantDir, tc.tier.Directory)
			}
			if tc.tier.Cadence != tc.cadence {
				t.Errorf("expected cadence %v, got %v", tc.cadence, tc.tier.Cadence)
			}
			if tc.tier.Tolerance != DefaultTolerance {
				t.Errorf("expected tolerance %v, got %v", DefaultTolerance, tc.tier.Tolerance)
			}
			if tc.tier.Retention != tc.retention {
				t.Errorf("expected retention %v, got %v", tc.retention, tc.tier.Retention)
			}
		})
	}

	if cfg.Schedule.Cron != DefaultCron {
		t.Errorf("expected default cron, got %q", cfg.Schedule.Cron)
	}
	if cfg.Telemetry.Logging.Dir != filepath.Join(DefaultBackupsRoot, DefaultLogsSubdir) {
		t.Errorf("unexpected default log dir %q", cfg.Telemetry.Logging.Dir)
	}
	if cfg.Telemetry.Metrics.PushURL != "" {
		t.Errorf("metrics push should default to disabled, got %q", cfg.Telemetry.Metrics.PushURL)
	}
}

func TestApplyDefaults_DerivedPathsFollowRoot(t *testing.T) {
	cfg := Config{}
	cfg.Backups.RootDir = "/data/mc"
	ApplyDefaults(&cfg)

	if cfg.Backups.Weekly.Directory != filepath.Join("/data/mc", WeeklyDirName) {
		t.Errorf("expected weekly directory under custom root, got %q", cfg.Backups.Weekly.Directory)
	}
	if cfg.History.Path != filepath.Join("/data/mc", DefaultHistoryFile) {
		t.Errorf("expected history path under custom root, got %q", cfg.History.Path)
	}
	if cfg.Telemetry.Logging.Dir != filepath.Join("/data/mc", DefaultLogsSubdir) {
		t.Errorf("expected log dir under custom root, got %q", cfg.Telemetry.Logging.Dir)
	}
}

func TestApplyDefaults_PreservesExplicitValues(t *testing.T) {
	cfg := Config{}
	cfg.Server.Service = "minecraft@modded.service"
	cfg.Backups.Daily.Directory = "/mnt/fast/daily"
	cfg.Backups.Daily.Cadence = 12 * time.Hour
	ApplyDefaults(&cfg)

	if cfg.Server.Service != "minecraft@modded.service" {
		t.Errorf("explicit service was overwritten: %q", cfg.Server.Service)
	}
	if cfg.Backups.Daily.Directory != "/mnt/fast/daily" {
		t.Errorf("explicit directory was overwritten: %q", cfg.Backups.Daily.Directory)
	}
	if cfg.Backups.Daily.Cadence != 12*time.Hour {
		t.Errorf("explicit cadence was overwritten: %v", cfg.Backups.Daily.Cadence)
	}
	// Remaining tier fields still default.
	if cfg.Backups.Daily.Retention != DefaultDailyRetention {
		t.Errorf("expected default retention, got %v", cfg.Backups.Daily.Retention)
	}
}

func TestApplyDefaults_Idempotent(t *testing.T) {
	var cfg Config
	ApplyDefaults(&cfg)
	first := cfg
	ApplyDefaults(&cfg)

	if cfg != first {
		t.Error("ApplyDefaults is not idempotent")
	}
}
