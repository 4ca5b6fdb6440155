package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Gredelston/minecraft-scripts/pkg/backup/schedule"
	"github.com/Gredelston/minecraft-scripts/pkg/cli"
	"github.com/Gredelston/minecraft-scripts/pkg/config"
	"github.com/Gredelston/minecraft-scripts/pkg/telemetry/logging"
	"github.com/spf13/cobra"
)

var daemonFlags struct {
	watchConfig bool
}

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run scheduled backups in the foreground",
	Long: `Run backup passes on a cron schedule until interrupted.

At every trigger of the configured cron expression the daemon performs
the same backup-and-prune pass as 'mcbackup run'. A trigger that fires
while a run is still in progress is skipped rather than queued. On
SIGINT or SIGTERM the daemon waits for any run in progress to finish
before exiting, so the server is never left stopped.

With --watch-config (or schedule.watch_config in the file) the
configuration file is reloaded when it changes, and schedule changes
take effect without a restart.

Examples:
  # Run at the configured schedule (default: 05:00 daily)
  mcbackup daemon

  # Pick up config edits while running
  mcbackup daemon --config /etc/mcbackup.yaml --watch-config`,
	RunE: runDaemon,
}

func init() {
	rootCmd.AddCommand(daemonCmd)

	daemonCmd.Flags().BoolVar(&daemonFlags.watchConfig, "watch-config", false, "reload the config file when it changes")
}

func runDaemon(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The daemon shell logs to the console only. Each triggered run opens
	// its own log file under its own run ID.
	shell, err := logging.New(logging.Config{
		Level:  cfg.Telemetry.Logging.Level,
		Format: cfg.Telemetry.Logging.Format,
	}, "", time.Now())
	if err != nil {
		return cli.NewCommandError("daemon", err)
	}
	defer shell.Close()
	slog.SetDefault(shell.Logger)

	ctx := cli.SetupSignalHandler()

	job := func() {
		// Re-read the singleton so a reloaded config applies from the
		// next trigger on.
		jobCfg := config.GetConfig()
		if _, err := executeRun(context.Background(), jobCfg, false); err != nil {
			slog.Error("scheduled backup run failed", "error", err)
		}
	}

	sched := schedule.NewScheduler(cfg.Schedule.Cron, job)
	if err := sched.Start(ctx); err != nil {
		return cli.NewCommandError("daemon", err)
	}
	defer sched.Stop()

	if next := sched.Next(); next != nil {
		slog.Info("backup daemon started",
			"schedule", cfg.Schedule.Cron, "next_run", next.Format(time.RFC3339))
	}

	if daemonFlags.watchConfig || cfg.Schedule.WatchConfig {
		if cfgFile == "" {
			slog.Warn("config watching requested but no --config file was given")
		} else {
			watcher, err := schedule.NewConfigWatcher(cfgFile, schedule.DefaultDebounceInterval)
			if err != nil {
				return cli.NewCommandError("daemon", err)
			}
			defer func() { _ = watcher.Stop() }()

			go func() {
				if err := watcher.Watch(ctx, reloadDaemonConfig(sched)); err != nil {
					slog.Error("config watcher failed", "error", err)
				}
			}()
		}
	}

	fmt.Println("✓ Backup daemon running, press Ctrl+C to stop")

	<-ctx.Done()
	slog.Info("shutting down, waiting for any run in progress")
	return nil
}

// reloadDaemonConfig returns the watcher callback: reload the config
// file and swap the cron schedule if it changed. A failed reload keeps
// the previous configuration in effect.
func reloadDaemonConfig(sched *schedule.Scheduler) func() error {
	return func() error {
		if err := config.ReloadConfig(cfgFile); err != nil {
			return err
		}

		cfg := config.GetConfig()
		if err := sched.Reschedule(cfg.Schedule.Cron); err != nil {
			return err
		}

		if next := sched.Next(); next != nil {
			slog.Info("configuration reloaded", "next_run", next.Format(time.RFC3339))
		}
		return nil
	}
}
