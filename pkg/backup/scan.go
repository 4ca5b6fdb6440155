package backup

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// Scan recursively collects the archives under dir: one record per
// regular file whose name ends in the archive suffix, in unspecified
// order. An empty directory yields no records. A missing or unreadable
// directory is an error; tier directories are part of the deployment,
// so their absence means misconfiguration rather than "nothing to do".
func Scan(dir string) ([]Archive, error) {
	var archives []Archive

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), Suffix) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		archives = append(archives, Archive{
			Path:    path,
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("scanning backup directory %s: %w", dir, walkErr)
	}

	return archives, nil
}
