package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Gredelston/minecraft-scripts/pkg/backup"
	"github.com/Gredelston/minecraft-scripts/pkg/backup/runner"
	"github.com/Gredelston/minecraft-scripts/pkg/cli"
	"github.com/Gredelston/minecraft-scripts/pkg/config"
	"github.com/Gredelston/minecraft-scripts/pkg/history"
	"github.com/Gredelston/minecraft-scripts/pkg/minecraft"
	"github.com/Gredelston/minecraft-scripts/pkg/proc"
	"github.com/Gredelston/minecraft-scripts/pkg/telemetry/logging"
	"github.com/Gredelston/minecraft-scripts/pkg/telemetry/metrics"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var runFlags struct {
	dryRun   bool
	logLevel string
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one backup pass now",
	Long: `Run one backup-and-prune pass over all tiers and exit.

For every tier whose newest archive is older than the tier's cadence,
the server is stopped, the data directory is archived, and the server
is restarted. Archives older than a tier's retention are then deleted.
Backups always complete before any pruning starts, so a failed run
never deletes anything.

Examples:
  # Back up whatever is due
  mcbackup run

  # Preview the decisions without touching the server or any files
  mcbackup run --dry-run

  # One-off verbose run
  mcbackup run --log-level debug`,
	RunE: runBackup,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "report what would be done without doing it")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
}

func runBackup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Apply flag overrides
	if runFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = runFlags.logLevel
	}

	summary, err := executeRun(cmd.Context(), cfg, runFlags.dryRun)
	if err != nil {
		return cli.NewCommandError("run", err)
	}

	if runFlags.dryRun {
		fmt.Printf("✓ Dry run complete (would create %d, skip %d, prune %d)\n",
			summary.Created, summary.Skipped, summary.Pruned)
		return nil
	}

	fmt.Printf("✓ Backup run complete (created %d, skipped %d, pruned %d)\n",
		summary.Created, summary.Skipped, summary.Pruned)
	if summary.PruneFailures > 0 {
		fmt.Printf("  %d archive(s) could not be deleted, see the run log\n", summary.PruneFailures)
	}
	return nil
}

// executeRun performs one backup-and-prune pass under a fresh run ID,
// with its own log file, optional history recording, and an optional
// metrics push at the end. The daemon calls this once per trigger.
func executeRun(ctx context.Context, cfg *config.Config, dryRun bool) (*runner.Summary, error) {
	runID := uuid.NewString()
	start := time.Now()

	logRun, err := logging.New(logging.Config{
		Level:  cfg.Telemetry.Logging.Level,
		Format: cfg.Telemetry.Logging.Format,
		Dir:    cfg.Telemetry.Logging.Dir,
	}, runID, start)
	if err != nil {
		return nil, err
	}
	defer logRun.Close()

	// Components capture the default logger at construction, so swap in
	// the per-run logger for the duration of the run.
	prev := slog.Default()
	slog.SetDefault(logRun.Logger)
	defer slog.SetDefault(prev)

	execRunner := proc.NewExecRunner()
	controller := minecraft.NewController(execRunner, cfg.Server.Service,
		cfg.Server.StopTimeout, cfg.Server.StartTimeout)
	gametime := minecraft.NewGametimeClient(execRunner, cfg.Server.RconScript,
		cfg.Server.GametimeTimeout)
	archiver := runner.NewTarArchiver(execRunner)
	orchestrator := runner.NewOrchestrator(controller, gametime, archiver, cfg.Server.DataDir)

	driverCfg := runner.Config{
		RunID:  runID,
		DryRun: dryRun,
	}

	if !cfg.History.Disabled {
		store, err := history.Open(history.Config{
			Path:        cfg.History.Path,
			BusyTimeout: cfg.History.BusyTimeout,
		})
		if err != nil {
			slog.Warn("history store unavailable, run will not be recorded", "error", err)
		} else {
			defer store.Close()
			driverCfg.History = store
		}
	}

	if cfg.Telemetry.Metrics.PushURL != "" {
		driverCfg.Metrics = metrics.NewCollector(&cfg.Telemetry.Metrics)
	}

	driver := runner.NewDriver(backup.Tiers(&cfg.Backups), orchestrator, driverCfg)
	return driver.Run(ctx)
}
