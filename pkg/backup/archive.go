package backup

import "time"

// Suffix is the file name suffix identifying archives on disk.
const Suffix = ".tar.gz"

// Archive is one backup archive observed on disk. Path, ModTime, and Size
// are captured once at scan time and never re-read: archives are
// write-once, so the last-modified time is a stable proxy for creation
// time, and a record must stay internally consistent across the whole
// decision that uses it.
type Archive struct {
	// Path is the archive file's location as seen by the scan.
	Path string

	// ModTime is the archive's last-modified time at scan time.
	ModTime time.Time

	// Size is the archive's size in bytes at scan time.
	Size int64
}

// AgeAt returns how old the archive is at the given instant.
func (a Archive) AgeAt(now time.Time) time.Duration {
	return now.Sub(a.ModTime)
}

// OlderThan reports whether the archive is strictly older than d at the
// given instant. The duration's sign is ignored: d always describes a
// point in the past, so a negated duration means the same cutoff. An
// archive exactly d old is not older than d.
func (a Archive) OlderThan(now time.Time, d time.Duration) bool {
	if d < 0 {
		d = -d
	}
	return a.ModTime.Before(now.Add(-d))
}
