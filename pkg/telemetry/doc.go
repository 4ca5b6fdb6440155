// Package telemetry groups observability for backup runs.
//
// # Components
//
//   - logging: per-run structured logs (console plus a log file per run)
//   - metrics: push-mode Prometheus metrics for runs, archives, and
//     reclaimed space
//
// Both components are shaped by mcbackup being a short-lived batch
// process rather than a server: logs are complete per-run artifacts,
// and metrics are pushed once at the end of a run instead of being
// scraped.
package telemetry
