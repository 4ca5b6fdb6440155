package config

import (
	"path/filepath"
	"time"
)

// Default values for configuration fields.
const (
	// Server defaults
	DefaultService         = "minecraft-server.service"
	DefaultDataDir         = "/srv/minecraft/current"
	DefaultRconScript      = "/srv/minecraft/scripts/rcon.sh"
	DefaultHost            = "localhost"
	DefaultPort            = uint16(25565)
	DefaultStopTimeout     = 2 * time.Minute
	DefaultStartTimeout    = 2 * time.Minute
	DefaultGametimeTimeout = 10 * time.Second

	// Backup defaults
	DefaultBackupsRoot      = "/srv/minecraft/backups"
	DefaultDailyCadence     = 24 * time.Hour
	DefaultWeeklyCadence    = 7 * 24 * time.Hour
	DefaultMonthlyCadence   = 30 * 24 * time.Hour
	DefaultTolerance        = 30 * time.Minute
	DefaultDailyRetention   = 4 * 24 * time.Hour
	DefaultWeeklyRetention  = 21 * 24 * time.Hour
	DefaultMonthlyRetention = 60 * 24 * time.Hour

	// History defaults
	DefaultHistoryFile        = "history.db"
	DefaultHistoryBusyTimeout = 5 * time.Second

	// Schedule defaults
	DefaultCron = "0 5 * * *"

	// Telemetry defaults
	DefaultLoggingLevel     = "info"
	DefaultLoggingFormat    = "text"
	DefaultLogsSubdir       = "logs"
	DefaultMetricsJob       = "mcbackup"
	DefaultMetricsNamespace = "minecraft"
)

// Tier subdirectory names under the backup root, in processing order.
const (
	DailyDirName   = "daily"
	WeeklyDirName  = "weekly"
	MonthlyDirName = "monthly"
)

// ApplyDefaults applies default values to a Config struct.
// It sets defaults for any fields that have zero values.
// This function is idempotent and safe to call multiple times.
func ApplyDefaults(cfg *Config) {
	// Server defaults
	if cfg.Server.Service == "" {
		cfg.Server.Service = DefaultService
	}
	if cfg.Server.DataDir == "" {
		cfg.Server.DataDir = DefaultDataDir
	}
	if cfg.Server.RconScript == "" {
		cfg.Server.RconScript = DefaultRconScript
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = DefaultHost
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Server.StopTimeout == 0 {
		cfg.Server.StopTimeout = DefaultStopTimeout
	}
	if cfg.Server.StartTimeout == 0 {
		cfg.Server.StartTimeout = DefaultStartTimeout
	}
	if cfg.Server.GametimeTimeout == 0 {
		cfg.Server.GametimeTimeout = DefaultGametimeTimeout
	}

	// Backup defaults. Tier directories, the log directory, and the history
	// path derive from the root, so the root default must be applied first.
	if cfg.Backups.RootDir == "" {
		cfg.Backups.RootDir = DefaultBackupsRoot
	}
	applyTierDefaults(&cfg.Backups.Daily, cfg.Backups.RootDir, DailyDirName,
		DefaultDailyCadence, DefaultDailyRetention)
	applyTierDefaults(&cfg.Backups.Weekly, cfg.Backups.RootDir, WeeklyDirName,
		DefaultWeeklyCadence, DefaultWeeklyRetention)
	applyTierDefaults(&cfg.Backups.Monthly, cfg.Backups.RootDir, MonthlyDirName,
		DefaultMonthlyCadence, DefaultMonthlyRetention)

	// History defaults
	if cfg.History.Path == "" {
		cfg.History.Path = filepath.Join(cfg.Backups.RootDir, DefaultHistoryFile)
	}
	if cfg.History.BusyTimeout == 0 {
		cfg.History.BusyTimeout = DefaultHistoryBusyTimeout
	}

	// Schedule defaults
	if cfg.Schedule.Cron == "" {
		cfg.Schedule.Cron = DefaultCron
	}

	// Telemetry defaults
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLoggingFormat
	}
	if cfg.Telemetry.Logging.Dir == "" {
		cfg.Telemetry.Logging.Dir = filepath.Join(cfg.Backups.RootDir, DefaultLogsSubdir)
	}
	if cfg.Telemetry.Metrics.Job == "" {
		cfg.Telemetry.Metrics.Job = DefaultMetricsJob
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
}

// applyTierDefaults fills one tier's zero-valued fields. The tolerance
// default is shared; cadence and retention differ per tier.
func applyTierDefaults(tier *TierConfig, root, subdir string, cadence, retention time.Duration) {
	if tier.Directory == "" {
		tier.Directory = filepath.Join(root, subdir)
	}
	if tier.Cadence == 0 {
		tier.Cadence = cadence
	}
	if tier.Tolerance == 0 {
		tier.Tolerance = DefaultTolerance
	}
	if tier.Retention == 0 {
		tier.Retention = retention
	}
}
