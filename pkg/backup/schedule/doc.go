// Package schedule runs backup passes on a cron cadence for daemon mode
// and watches the configuration file for changes.
//
// Triggers that land while a run is still executing are skipped rather
// than queued: a backup run is idempotent per cadence window, so the
// next trigger does the same work the skipped one would have.
package schedule
