package config

import "time"

// Config is the root configuration structure for mcbackup.
// It contains all configuration sections for server control, backup tiers,
// run history, daemon scheduling, and telemetry settings.
type Config struct {
	// Server contains configuration for the managed Minecraft server:
	// its systemd unit, data directory, and control channels.
	Server ServerConfig `yaml:"server"`

	// Backups contains the backup root directory and the three tier
	// definitions (daily, weekly, monthly).
	Backups BackupsConfig `yaml:"backups"`

	// History contains configuration for the SQLite run-history store.
	History HistoryConfig `yaml:"history"`

	// Schedule contains configuration for daemon mode (in-process cron).
	Schedule ScheduleConfig `yaml:"schedule"`

	// Telemetry contains configuration for logging and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains configuration for the managed server process and
// its control channels.
type ServerConfig struct {
	// Service is the systemd unit controlling the server process.
	// Default: "minecraft-server.service"
	Service string `yaml:"service"`

	// DataDir is the live server data directory that gets archived.
	// Symlinks inside it are dereferenced at archive time.
	// Default: "/srv/minecraft/current"
	DataDir string `yaml:"data_dir"`

	// RconScript is the path of the helper script used to send remote
	// console commands to the running server (the gametime query).
	// Default: "/srv/minecraft/scripts/rcon.sh"
	RconScript string `yaml:"rcon_script"`

	// Host is the server address used by the status command.
	// Default: "localhost"
	Host string `yaml:"host"`

	// Port is the server port used by the status command.
	// Default: 25565
	Port uint16 `yaml:"port"`

	// StopTimeout bounds how long to wait for the stop command.
	// Default: 2m
	StopTimeout time.Duration `yaml:"stop_timeout"`

	// StartTimeout bounds how long to wait for the start command.
	// Default: 2m
	StartTimeout time.Duration `yaml:"start_timeout"`

	// GametimeTimeout bounds the best-effort gametime query.
	// Default: 10s
	GametimeTimeout time.Duration `yaml:"gametime_timeout"`
}

// BackupsConfig contains the backup storage layout and tier definitions.
type BackupsConfig struct {
	// RootDir is the directory holding the tier subdirectories and run logs.
	// Default: "/srv/minecraft/backups"
	RootDir string `yaml:"root_dir"`

	// Daily is the short-cadence tier.
	Daily TierConfig `yaml:"daily"`

	// Weekly is the medium-cadence tier.
	Weekly TierConfig `yaml:"weekly"`

	// Monthly is the long-cadence tier.
	Monthly TierConfig `yaml:"monthly"`
}

// TierConfig defines one backup tier. The three tiers are fixed; only
// their directories and windows are configurable.
type TierConfig struct {
	// Directory holds this tier's archives.
	// Default: "<backups.root_dir>/<tier name>"
	Directory string `yaml:"directory"`

	// Cadence is the nominal interval between backups in this tier.
	// Default: 24h (daily), 168h (weekly), 720h (monthly)
	Cadence time.Duration `yaml:"cadence"`

	// Tolerance is the early-completion slack subtracted from Cadence when
	// deciding whether a backup is due. The sign is ignored; a backup up to
	// Tolerance younger than Cadence still satisfies the cadence.
	// Default: 30m
	Tolerance time.Duration `yaml:"tolerance"`

	// Retention is the maximum archive age before deletion eligibility.
	// Default: 96h (daily), 504h (weekly), 1440h (monthly)
	Retention time.Duration `yaml:"retention"`
}

// HistoryConfig contains configuration for the run-history store.
type HistoryConfig struct {
	// Disabled turns off history recording entirely.
	// Default: false
	Disabled bool `yaml:"disabled"`

	// Path is the SQLite database file for run history.
	// Default: "<backups.root_dir>/history.db"
	Path string `yaml:"path"`

	// BusyTimeout is how long to wait for database locks before failing.
	// Default: 5s
	BusyTimeout time.Duration `yaml:"busy_timeout"`
}

// ScheduleConfig contains configuration for daemon mode.
type ScheduleConfig struct {
	// Cron is the standard five-field cron expression for daemon runs.
	// Default: "0 5 * * *"
	Cron string `yaml:"cron"`

	// WatchConfig reloads the configuration file on change while the
	// daemon is running. Schedule changes restart the cron entry.
	// Default: false
	WatchConfig bool `yaml:"watch_config"`
}

// TelemetryConfig contains configuration for logging and metrics.
type TelemetryConfig struct {
	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains push-gateway metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains structured logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", or "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the log output format: "text" or "json".
	// Default: "text"
	Format string `yaml:"format"`

	// Dir is the directory receiving one log file per run, named after the
	// run's start timestamp. Console output is always emitted as well.
	// Default: "<backups.root_dir>/logs"
	Dir string `yaml:"dir"`
}

// MetricsConfig contains push-gateway metrics configuration. The tool never
// opens a listener; metrics are pushed at the end of a run.
type MetricsConfig struct {
	// PushURL is the Pushgateway base URL. Empty disables metrics.
	// Default: "" (disabled)
	PushURL string `yaml:"push_url"`

	// Job is the Pushgateway job name.
	// Default: "mcbackup"
	Job string `yaml:"job"`

	// Namespace prefixes every metric name.
	// Default: "minecraft"
	Namespace string `yaml:"namespace"`
}
