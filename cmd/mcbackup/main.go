// Mcbackup manages tiered backups of a systemd-run Minecraft server.
//
// Each backup pass walks the daily, weekly, and monthly tiers in order.
// For every tier whose newest archive has aged past the tier's cadence,
// the server is stopped, its data directory is packed into a gzipped
// tarball stamped with the wall clock and in-game time, and the server
// is restarted. Archives older than a tier's retention are then pruned.
// The backup directories themselves are the source of truth: the tool
// keeps no state of its own beyond an optional audit trail.
//
// Usage:
//
//	# Run one backup pass now
//	mcbackup run
//
//	# Preview the decisions without touching anything
//	mcbackup run --dry-run
//
//	# Run on a cron schedule in the foreground
//	mcbackup daemon
//
//	# Ping the server
//	mcbackup status --players
//
//	# Inspect recorded runs
//	mcbackup history --limit 20
//
//	# Show version information
//	mcbackup version
package main

func main() {
	Execute()
}
