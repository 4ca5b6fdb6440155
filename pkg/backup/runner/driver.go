package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Gredelston/minecraft-scripts/pkg/backup"
	"github.com/Gredelston/minecraft-scripts/pkg/telemetry/metrics"
)

// Run statuses reported to history and metrics.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Action kinds recorded for tier decisions.
const (
	ActionCreated = "created"
	ActionSkipped = "skipped"
	ActionPruned  = "pruned"
	ActionError   = "error"
)

// Recorder persists the audit trail of a run. The driver treats
// recording as best-effort: failures are logged and the run continues.
type Recorder interface {
	StartRun(ctx context.Context, id string, startedAt time.Time, dryRun bool) error
	RecordAction(ctx context.Context, runID, tier, kind, archivePath, detail string) error
	FinishRun(ctx context.Context, id string, finishedAt time.Time, status, errText string) error
}

// BackupCreator creates one tier's backup.
type BackupCreator interface {
	CreateBackup(ctx context.Context, tier backup.Tier) (backup.Archive, error)
}

// Summary counts what one run did.
type Summary struct {
	Created        int
	Skipped        int
	Pruned         int
	PruneFailures  int
	BytesReclaimed int64
}

// Config assembles a Driver.
type Config struct {
	// RunID correlates log lines, history rows, and metrics for one run.
	RunID string

	// DryRun evaluates and records every decision without stopping the
	// server, writing archives, or deleting files.
	DryRun bool

	// History receives the audit trail. Nil disables recording.
	History Recorder

	// Metrics receives run counters and is pushed once at the end of the
	// run. Nil disables metrics.
	Metrics *metrics.Collector
}

// Driver runs the passes of one backup run over the fixed tier order:
// first create a backup for every due tier, then prune expired archives.
// Creation runs strictly before pruning so a tier is never left
// temporarily empty by its own run, and a backup failure aborts the run
// before anything is deleted.
type Driver struct {
	tiers   []backup.Tier
	creator BackupCreator
	history Recorder
	metrics *metrics.Collector
	runID   string
	dryRun  bool
	logger  *slog.Logger
	now     func() time.Time
	remove  func(string) error
}

// NewDriver creates a driver over the given tiers.
func NewDriver(tiers []backup.Tier, creator BackupCreator, cfg Config) *Driver {
	return &Driver{
		tiers:   tiers,
		creator: creator,
		history: cfg.History,
		metrics: cfg.Metrics,
		runID:   cfg.RunID,
		dryRun:  cfg.DryRun,
		logger:  slog.Default().With("component", "backup.driver"),
		now:     time.Now,
		remove:  os.Remove,
	}
}

// Run executes one full backup-and-prune pass. It returns an error only
// for an unscannable tier directory or a failed backup of a due tier;
// per-archive deletion failures are counted in the summary and logged.
// The summary is valid even when an error is returned.
func (d *Driver) Run(ctx context.Context) (*Summary, error) {
	start := d.now()
	d.logger.Info("backup run starting", "dry_run", d.dryRun, "tiers", len(d.tiers))
	d.recordStart(ctx, start)

	summary := &Summary{}
	err := d.createBackups(ctx, summary)
	if err == nil {
		err = d.pruneExpired(ctx, summary)
	}

	finish := d.now()
	status := StatusSuccess
	errText := ""
	if err != nil {
		status = StatusFailed
		errText = err.Error()
	}
	d.recordFinish(ctx, finish, status, errText)

	if d.metrics != nil {
		d.metrics.RecordRun(status, finish.Sub(start))
		if pushErr := d.metrics.Push(ctx); pushErr != nil {
			d.logger.Warn("metrics push failed", "error", pushErr)
		}
	}

	if err != nil {
		d.logger.Error("backup run failed", "error", err, "duration", finish.Sub(start))
		return summary, err
	}

	d.logger.Info("backup run finished",
		"created", summary.Created,
		"skipped", summary.Skipped,
		"pruned", summary.Pruned,
		"prune_failures", summary.PruneFailures,
		"bytes_reclaimed", summary.BytesReclaimed,
		"duration", finish.Sub(start))
	return summary, nil
}

// createBackups walks the tiers in order and backs up each due one. The
// first failure aborts: tiers share the same server and tar pipeline, so
// a failure here would repeat on every remaining tier, and restarting
// the server per-tier only to fail again is worse than surfacing it.
func (d *Driver) createBackups(ctx context.Context, summary *Summary) error {
	for _, tier := range d.tiers {
		archives, err := backup.Scan(tier.Directory)
		if err != nil {
			return NewConfigurationError(tier.Directory, err)
		}

		if !tier.NeedsBackup(archives, d.now()) {
			d.logger.Info("no backup needed", "tier", tier.Name, "archives", len(archives))
			d.recordAction(ctx, tier.Name, ActionSkipped, "", "cadence satisfied")
			summary.Skipped++
			continue
		}

		if d.dryRun {
			d.logger.Info("would create backup", "tier", tier.Name, "dir", tier.Directory)
			d.recordAction(ctx, tier.Name, ActionCreated, "", "dry run")
			summary.Created++
			continue
		}

		archive, err := d.creator.CreateBackup(ctx, tier)
		if err != nil {
			d.recordAction(ctx, tier.Name, ActionError, "", err.Error())
			return fmt.Errorf("backing up %s tier: %w", tier.Name, err)
		}

		d.logger.Info("backup created",
			"tier", tier.Name, "path", archive.Path, "size_bytes", archive.Size)
		d.recordAction(ctx, tier.Name, ActionCreated, archive.Path, "")
		summary.Created++
		if d.metrics != nil {
			d.metrics.RecordBackupCreated(tier.Name)
		}
	}
	return nil
}

// pruneExpired deletes archives past each tier's retention window. The
// directories are scanned again rather than reusing the creation pass's
// records, so archives created moments ago are judged too.
func (d *Driver) pruneExpired(ctx context.Context, summary *Summary) error {
	for _, tier := range d.tiers {
		archives, err := backup.Scan(tier.Directory)
		if err != nil {
			return NewConfigurationError(tier.Directory, err)
		}

		for _, archive := range tier.Expired(archives, d.now()) {
			if d.dryRun {
				d.logger.Info("would delete old backup",
					"tier", tier.Name, "path", archive.Path, "mtime", archive.ModTime)
				d.recordAction(ctx, tier.Name, ActionPruned, archive.Path, "dry run")
				summary.Pruned++
				continue
			}

			d.logger.Info("deleting old backup",
				"tier", tier.Name, "path", archive.Path,
				"mtime", archive.ModTime, "retention", tier.Retention)
			if err := d.remove(archive.Path); err != nil {
				delErr := NewDeletionError(archive.Path, err)
				d.logger.Warn("could not delete old backup", "tier", tier.Name, "error", delErr)
				d.recordAction(ctx, tier.Name, ActionError, archive.Path, delErr.Error())
				summary.PruneFailures++
				continue
			}

			d.recordAction(ctx, tier.Name, ActionPruned, archive.Path, "")
			summary.Pruned++
			summary.BytesReclaimed += archive.Size
			if d.metrics != nil {
				d.metrics.RecordArchivePruned(tier.Name, archive.Size)
			}
		}
	}
	return nil
}

func (d *Driver) recordStart(ctx context.Context, start time.Time) {
	if d.history == nil {
		return
	}
	if err := d.history.StartRun(ctx, d.runID, start, d.dryRun); err != nil {
		d.logger.Warn("history write failed", "error", err)
	}
}

func (d *Driver) recordAction(ctx context.Context, tier, kind, archivePath, detail string) {
	if d.history == nil {
		return
	}
	if err := d.history.RecordAction(ctx, d.runID, tier, kind, archivePath, detail); err != nil {
		d.logger.Warn("history write failed", "error", err)
	}
}

func (d *Driver) recordFinish(ctx context.Context, finish time.Time, status, errText string) {
	if d.history == nil {
		return
	}
	if err := d.history.FinishRun(ctx, d.runID, finish, status, errText); err != nil {
		d.logger.Warn("history write failed", "error", err)
	}
}
