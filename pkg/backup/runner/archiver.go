package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Gredelston/minecraft-scripts/pkg/proc"
)

// TarArchiver packages a directory into a gzip-compressed tarball by
// shelling out to the system tar. Reusing tar keeps archives restorable
// with nothing but standard tooling on any host.
type TarArchiver struct {
	runner proc.Runner
	logger *slog.Logger
}

// NewTarArchiver creates an archiver backed by the given runner.
func NewTarArchiver(runner proc.Runner) *TarArchiver {
	return &TarArchiver{
		runner: runner,
		logger: slog.Default().With("component", "backup.archiver"),
	}
}

// Create archives sourceDir into archivePath. The -h flag dereferences
// symlinks: the live data directory is typically a symlink into a
// versioned install, and the archive must carry the files, not the link.
func (a *TarArchiver) Create(ctx context.Context, archivePath, sourceDir string) error {
	a.logger.Info("creating archive", "path", archivePath, "source", sourceDir)

	if _, err := a.runner.Run(ctx, "tar", "-czhf", archivePath, sourceDir); err != nil {
		return fmt.Errorf("tar: %w", err)
	}
	return nil
}
