// Package backup defines the archive lifecycle model: archive records
// scanned from tier directories, the archive file naming scheme, and the
// fixed daily/weekly/monthly tier set with its creation and retention
// policy.
//
// The policy functions are pure: they take a snapshot of archive records
// plus an explicit "now" and return decisions, so every cadence and
// retention rule can be tested with synthetic timestamps. The filesystem
// is touched only by Scan, and the filesystem stays the single source of
// truth. No state is carried between runs; each run re-derives its
// decisions from the archive files present on disk.
package backup
