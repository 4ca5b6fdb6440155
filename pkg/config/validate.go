package config

import (
	"fmt"
	"net/url"
	"strings"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "server.service").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
// It implements the error interface and provides access to all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. It returns nil if the configuration is valid.
// All validation errors are collected and returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateServer(&cfg.Server)...)
	errs = append(errs, validateBackups(&cfg.Backups)...)
	errs = append(errs, validateHistory(&cfg.History)...)
	errs = append(errs, validateSchedule(&cfg.Schedule)...)
	errs = append(errs, validateTelemetry(&cfg.Telemetry)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

// validateServer validates server control configuration.
func validateServer(cfg *ServerConfig) []FieldError {
	var errs []FieldError

	if cfg.Service == "" {
		errs = append(errs, FieldError{
			Field:   "server.service",
			Message: "systemd unit name is required",
		})
	}
	if cfg.DataDir == "" {
		errs = append(errs, FieldError{
			Field:   "server.data_dir",
			Message: "data directory is required",
		})
	}
	if cfg.RconScript == "" {
		errs = append(errs, FieldError{
			Field:   "server.rcon_script",
			Message: "rcon script path is required",
		})
	}
	if cfg.StopTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.stop_timeout",
			Message: "stop timeout must be positive",
		})
	}
	if cfg.StartTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.start_timeout",
			Message: "start timeout must be positive",
		})
	}
	if cfg.GametimeTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.gametime_timeout",
			Message: "gametime timeout must be positive",
		})
	}

	return errs
}

// validateBackups validates the backup root and all three tiers.
func validateBackups(cfg *BackupsConfig) []FieldError {
	var errs []FieldError

	if cfg.RootDir == "" {
		errs = append(errs, FieldError{
			Field:   "backups.root_dir",
			Message: "backup root directory is required",
		})
	}
	errs = append(errs, validateTier("backups.daily", &cfg.Daily)...)
	errs = append(errs, validateTier("backups.weekly", &cfg.Weekly)...)
	errs = append(errs, validateTier("backups.monthly", &cfg.Monthly)...)

	return errs
}

// validateTier validates one tier's windows. The tolerance may carry either
// sign; only its magnitude is compared against the cadence.
func validateTier(prefix string, tier *TierConfig) []FieldError {
	var errs []FieldError

	if tier.Directory == "" {
		errs = append(errs, FieldError{
			Field:   prefix + ".directory",
			Message: "tier directory is required",
		})
	}
	if tier.Cadence <= 0 {
		errs = append(errs, FieldError{
			Field:   prefix + ".cadence",
			Message: "cadence must be positive",
		})
	}
	if tier.Retention <= 0 {
		errs = append(errs, FieldError{
			Field:   prefix + ".retention",
			Message: "retention must be positive",
		})
	}
	tolerance := tier.Tolerance
	if tolerance < 0 {
		tolerance = -tolerance
	}
	if tier.Cadence > 0 && tolerance >= tier.Cadence {
		errs = append(errs, FieldError{
			Field:   prefix + ".tolerance",
			Message: "tolerance must be smaller than cadence",
		})
	}

	return errs
}

// validateHistory validates run-history store configuration.
func validateHistory(cfg *HistoryConfig) []FieldError {
	var errs []FieldError

	if !cfg.Disabled && cfg.Path == "" {
		errs = append(errs, FieldError{
			Field:   "history.path",
			Message: "history database path is required unless history is disabled",
		})
	}
	if cfg.BusyTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "history.busy_timeout",
			Message: "busy timeout must be positive",
		})
	}

	return errs
}

// validateSchedule validates daemon scheduling configuration. The cron
// expression itself is parsed by the scheduler at startup; here we only
// require that one is present.
func validateSchedule(cfg *ScheduleConfig) []FieldError {
	var errs []FieldError

	if cfg.Cron == "" {
		errs = append(errs, FieldError{
			Field:   "schedule.cron",
			Message: "cron expression is required",
		})
	}

	return errs
}

// validateTelemetry validates logging and metrics configuration.
func validateTelemetry(cfg *TelemetryConfig) []FieldError {
	var errs []FieldError

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("invalid log level %q (must be debug, info, warn, or error)", cfg.Logging.Level),
		})
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("invalid log format %q (must be text or json)", cfg.Logging.Format),
		})
	}

	if cfg.Logging.Dir == "" {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.dir",
			Message: "log directory is required",
		})
	}

	if cfg.Metrics.PushURL != "" {
		u, err := url.Parse(cfg.Metrics.PushURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			errs = append(errs, FieldError{
				Field:   "telemetry.metrics.push_url",
				Message: "push URL must be a valid http(s) URL",
			})
		}
		if cfg.Metrics.Job == "" {
			errs = append(errs, FieldError{
				Field:   "telemetry.metrics.job",
				Message: "job name is required when a push URL is set",
			})
		}
	}

	return errs
}
