// Package metrics provides Prometheus metrics for backup runs.
//
// # Overview
//
// Mcbackup is a short-lived batch process, so metrics work in push mode:
// the collector accumulates counters on a private registry during a run
// and pushes them once to a Pushgateway when the run finishes. No HTTP
// listener is ever opened. Without a configured push URL the collector
// is inert and every recording call returns immediately.
//
// # Metrics
//
//   - runs_total{status}: backup runs by final status
//   - archives_created_total{tier}: archives created per tier
//   - archives_pruned_total{tier}: archives deleted by retention per tier
//   - bytes_reclaimed_total{tier}: bytes reclaimed by pruning per tier
//   - run_duration_seconds: wall-clock duration of one run
//   - last_success_timestamp_seconds: Unix time of the last good run
//
// All names are prefixed with the configured namespace and the "backup"
// subsystem, e.g. minecraft_backup_runs_total.
//
// # Usage
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics)
//	collector.RecordBackupCreated("daily")
//	collector.RecordRun("success", 42*time.Second)
//	if err := collector.Push(ctx); err != nil {
//		slog.Warn("metrics push failed", "error", err)
//	}
package metrics
