package backup

import (
	"fmt"
	"time"
)

const (
	namePrefix     = "backup-"
	nameTimeLayout = "20060102-150405"
)

// FileName returns the name for an archive created at the given time.
// A non-empty gametime is embedded as a "-g<gametime>" segment so the
// in-game clock at backup time can be recovered from the name alone:
//
//	backup-20230101-120000.tar.gz
//	backup-20230101-120000-g12345.tar.gz
//
// The name is informational; scanning and retention go by file
// modification time, not by parsing names.
func FileName(t time.Time, gametime string) string {
	if gametime == "" {
		return namePrefix + t.Format(nameTimeLayout) + Suffix
	}
	return fmt.Sprintf("%s%s-g%s%s", namePrefix, t.Format(nameTimeLayout), gametime, Suffix)
}
