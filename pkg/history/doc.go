// Package history records what each backup run did in a local SQLite
// database: one row per run and one row per tier decision (created,
// skipped, pruned, error).
//
// The history is an audit trail, not an input: retention and cadence
// decisions are always re-derived from the archive files on disk, so a
// lost or corrupt history database costs nothing but the record. Writes
// are correspondingly best-effort at the call sites.
package history
