package runner

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Gredelston/minecraft-scripts/pkg/backup"
)

// ServerController quiesces and resumes the server process.
type ServerController interface {
	Stop(ctx context.Context) error
	Start(ctx context.Context) error
}

// GametimeSource reads the server's in-game clock, best-effort. The
// boolean is false when no value could be obtained; failures surface
// through the source's own logging, never as errors.
type GametimeSource interface {
	Gametime(ctx context.Context) (string, bool)
}

// Archiver packages a directory into an archive file.
type Archiver interface {
	Create(ctx context.Context, archivePath, sourceDir string) error
}

// Orchestrator sequences one tier's backup: gametime query, server
// stop, archive creation, server start.
type Orchestrator struct {
	server   ServerController
	gametime GametimeSource
	archiver Archiver
	dataDir  string
	logger   *slog.Logger
	now      func() time.Time
}

// NewOrchestrator creates an orchestrator archiving dataDir.
func NewOrchestrator(server ServerController, gametime GametimeSource, archiver Archiver, dataDir string) *Orchestrator {
	return &Orchestrator{
		server:   server,
		gametime: gametime,
		archiver: archiver,
		dataDir:  dataDir,
		logger:   slog.Default().With("component", "backup.orchestrator"),
		now:      time.Now,
	}
}

// CreateBackup runs the backup sequence for one due tier and returns a
// record of the new archive. The gametime query comes first because a
// stopped server cannot answer it, and its failure never aborts. A stop
// failure aborts before anything is written. The server is started
// again even when archiving failed, and the archiving error, if any, is
// what the caller sees; a failed start is logged but cannot unwrite a
// good archive.
func (o *Orchestrator) CreateBackup(ctx context.Context, tier backup.Tier) (backup.Archive, error) {
	gametime, _ := o.gametime.Gametime(ctx)

	if err := o.server.Stop(ctx); err != nil {
		return backup.Archive{}, NewServerControlError("stop", err)
	}

	created := o.now()
	archivePath := filepath.Join(tier.Directory, backup.FileName(created, gametime))

	archiveErr := o.archiver.Create(ctx, archivePath, o.dataDir)

	// TODO: skip the restart when the server was already stopped before
	// this run touched it.
	if err := o.server.Start(ctx); err != nil {
		o.logger.Error("server did not start after backup",
			"error", NewServerControlError("start", err))
	}

	if archiveErr != nil {
		return backup.Archive{}, NewArchiveToolError(archivePath, archiveErr)
	}

	archive := backup.Archive{Path: archivePath, ModTime: created}
	if info, err := os.Stat(archivePath); err == nil {
		archive.ModTime = info.ModTime()
		archive.Size = info.Size()
	}
	return archive, nil
}
