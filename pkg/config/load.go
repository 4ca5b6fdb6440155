package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any
// errors. An empty path skips the file read and yields pure defaults.
// The configuration is not modified by environment variables; use
// LoadConfigWithEnvOverrides for that functionality.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention MCBACKUP_SECTION_FIELD (e.g., MCBACKUP_SERVER_SERVICE).
// Environment variables always take precedence over file-based configuration.
//
// The loading sequence is:
// 1. Load YAML from file
// 2. Apply default values
// 3. Apply environment variable overrides
// 4. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	// First load from file (this already applies defaults)
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	// Re-validate after overrides
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Environment variables use the format MCBACKUP_SECTION_FIELD.
func applyEnvOverrides(cfg *Config) {
	// Server overrides
	if val := os.Getenv("MCBACKUP_SERVER_SERVICE"); val != "" {
		cfg.Server.Service = val
	}
	if val := os.Getenv("MCBACKUP_SERVER_DATA_DIR"); val != "" {
		cfg.Server.DataDir = val
	}
	if val := os.Getenv("MCBACKUP_SERVER_RCON_SCRIPT"); val != "" {
		cfg.Server.RconScript = val
	}
	if val := os.Getenv("MCBACKUP_SERVER_HOST"); val != "" {
		cfg.Server.Host = val
	}
	if val := os.Getenv("MCBACKUP_SERVER_PORT"); val != "" {
		if p, err := strconv.ParseUint(val, 10, 16); err == nil {
			cfg.Server.Port = uint16(p)
		}
	}
	if val := os.Getenv("MCBACKUP_SERVER_STOP_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.StopTimeout = d
		}
	}
	if val := os.Getenv("MCBACKUP_SERVER_START_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.StartTimeout = d
		}
	}
	if val := os.Getenv("MCBACKUP_SERVER_GAMETIME_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.GametimeTimeout = d
		}
	}

	// Backup overrides
	if val := os.Getenv("MCBACKUP_BACKUPS_ROOT_DIR"); val != "" {
		cfg.Backups.RootDir = val
	}
	applyTierEnvOverrides(&cfg.Backups.Daily, "MCBACKUP_BACKUPS_DAILY_")
	applyTierEnvOverrides(&cfg.Backups.Weekly, "MCBACKUP_BACKUPS_WEEKLY_")
	applyTierEnvOverrides(&cfg.Backups.Monthly, "MCBACKUP_BACKUPS_MONTHLY_")

	// History overrides
	if val := os.Getenv("MCBACKUP_HISTORY_DISABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.History.Disabled = b
		}
	}
	if val := os.Getenv("MCBACKUP_HISTORY_PATH"); val != "" {
		cfg.History.Path = val
	}

	// Schedule overrides
	if val := os.Getenv("MCBACKUP_SCHEDULE_CRON"); val != "" {
		cfg.Schedule.Cron = val
	}
	if val := os.Getenv("MCBACKUP_SCHEDULE_WATCH_CONFIG"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Schedule.WatchConfig = b
		}
	}

	// Telemetry overrides
	if val := os.Getenv("MCBACKUP_LOGGING_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("MCBACKUP_LOGGING_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv("MCBACKUP_LOGGING_DIR"); val != "" {
		cfg.Telemetry.Logging.Dir = val
	}
	if val := os.Getenv("MCBACKUP_METRICS_PUSH_URL"); val != "" {
		cfg.Telemetry.Metrics.PushURL = val
	}
	if val := os.Getenv("MCBACKUP_METRICS_JOB"); val != "" {
		cfg.Telemetry.Metrics.Job = val
	}
	if val := os.Getenv("MCBACKUP_METRICS_NAMESPACE"); val != "" {
		cfg.Telemetry.Metrics.Namespace = val
	}
}

// applyTierEnvOverrides applies environment variable overrides for one tier.
// Tier variables follow the format MCBACKUP_BACKUPS_<TIER>_<FIELD> where
// TIER is DAILY, WEEKLY, or MONTHLY.
func applyTierEnvOverrides(tier *TierConfig, prefix string) {
	if val := os.Getenv(prefix + "DIRECTORY"); val != "" {
		tier.Directory = val
	}
	if val := os.Getenv(prefix + "CADENCE"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			tier.Cadence = d
		}
	}
	if val := os.Getenv(prefix + "TOLERANCE"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			tier.Tolerance = d
		}
	}
	if val := os.Getenv(prefix + "RETENTION"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			tier.Retention = d
		}
	}
}
