// Package config provides configuration management for mcbackup.
//
// This package handles loading, validating, and managing configuration from
// YAML files with environment variable overrides. Every setting has a
// default reproducing the standard deployment, so running without a
// configuration file is fully supported.
//
// # Configuration Loading
//
// Configuration can be loaded in two ways:
//
//  1. From a YAML file only:
//     cfg, err := config.LoadConfig("mcbackup.yaml")
//
//  2. From a YAML file with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides("mcbackup.yaml")
//
// An empty path yields the built-in defaults.
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention MCBACKUP_SECTION_FIELD.
// For example:
//
//   - MCBACKUP_SERVER_SERVICE overrides server.service
//   - MCBACKUP_BACKUPS_DAILY_RETENTION overrides backups.daily.retention
//   - MCBACKUP_LOGGING_LEVEL overrides telemetry.logging.level
//
// Duration-valued variables use Go duration syntax ("30m", "96h").
// Environment variables always take precedence over file-based configuration.
//
// # Configuration Precedence
//
// Configuration values are applied in the following order (later overrides
// earlier):
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// # Singleton Pattern
//
// For application-wide configuration access, use the singleton pattern:
//
//	// At application startup
//	if err := config.Initialize("mcbackup.yaml"); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Anywhere in the application
//	cfg := config.GetConfig()
//	fmt.Println(cfg.Server.Service)
//
// The daemon's config watcher calls ReloadConfig when the file changes.
// For testing, prefer dependency injection with explicit Config instances
// rather than the global singleton.
//
// # Validation
//
// All configuration is validated automatically during loading. Validation
// errors include field paths and helpful messages, and all errors are
// reported at once:
//
//	configuration validation failed with 2 errors:
//	  - backups.daily.cadence: cadence must be positive
//	  - telemetry.logging.level: invalid log level "verbose" (must be debug, info, warn, or error)
//
// # Example Configuration
//
// Here is a minimal configuration file overriding the backup location and
// the daily retention window:
//
//	backups:
//	  root_dir: "/var/backups/minecraft"
//	  daily:
//	    retention: 168h
//
//	telemetry:
//	  logging:
//	    level: "debug"
//
// # Thread Safety
//
// All configuration access is thread-safe. The singleton uses read-write
// locks to allow concurrent reads while protecting against writes during
// daemon reloads.
package config
