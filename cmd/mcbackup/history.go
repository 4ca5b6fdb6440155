package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Gredelston/minecraft-scripts/pkg/cli"
	"github.com/Gredelston/minecraft-scripts/pkg/history"
	"github.com/spf13/cobra"
)

var historyFlags struct {
	limit  int
	runID  string
	format string
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded backup runs",
	Long: `Show the recorded history of backup runs.

Without flags the most recent runs are listed, newest first. With
--run, the per-tier actions of a single run are shown instead.

Examples:
  # The last ten runs
  mcbackup history

  # Further back
  mcbackup history --limit 50

  # What one run did, tier by tier
  mcbackup history --run 7c9e6679-7425-40de-944b-e07fc1f90ae7

  # Machine-readable output
  mcbackup history --format json`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyFlags.limit, "limit", 10, "max runs to list")
	historyCmd.Flags().StringVar(&historyFlags.runID, "run", "", "show the actions of a single run")
	historyCmd.Flags().StringVar(&historyFlags.format, "format", "text", "output format: text, json")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.History.Disabled {
		return cli.NewConfigError("history.disabled", "history recording is disabled")
	}

	store, err := history.Open(history.Config{
		Path:        cfg.History.Path,
		BusyTimeout: cfg.History.BusyTimeout,
	})
	if err != nil {
		return cli.NewCommandError("history", fmt.Errorf("failed to open history database: %w", err))
	}
	defer store.Close()

	ctx := cmd.Context()

	if historyFlags.runID != "" {
		actions, err := store.RunActions(ctx, historyFlags.runID)
		if err != nil {
			return cli.NewCommandError("history", err)
		}

		switch historyFlags.format {
		case "json":
			return outputHistoryJSON(os.Stdout, map[string]interface{}{
				"run_id":  historyFlags.runID,
				"actions": actions,
			})
		default:
			return outputActionsText(os.Stdout, historyFlags.runID, actions)
		}
	}

	runs, err := store.RecentRuns(ctx, historyFlags.limit)
	if err != nil {
		return cli.NewCommandError("history", err)
	}

	switch historyFlags.format {
	case "json":
		return outputHistoryJSON(os.Stdout, map[string]interface{}{
			"total_runs": len(runs),
			"runs":       runs,
		})
	default:
		return outputRunsText(os.Stdout, runs)
	}
}

func outputRunsText(output *os.File, runs []history.Run) error {
	fmt.Fprintf(output, "Total runs: %d\n", len(runs))
	fmt.Fprintln(output)

	if len(runs) == 0 {
		fmt.Fprintln(output, "No runs recorded.")
		return nil
	}

	for i, run := range runs {
		if i > 0 {
			fmt.Fprintln(output)
		}

		fmt.Fprintf(output, "Run ID: %s\n", run.ID)
		fmt.Fprintf(output, "Started: %s\n", run.StartedAt.Format(time.RFC3339))
		if !run.FinishedAt.IsZero() {
			fmt.Fprintf(output, "Finished: %s (took %s)\n",
				run.FinishedAt.Format(time.RFC3339),
				run.FinishedAt.Sub(run.StartedAt).Round(time.Second))
		}
		fmt.Fprintf(output, "Status: %s\n", run.Status)
		if run.DryRun {
			fmt.Fprintln(output, "Dry Run: yes")
		}
		if run.Error != "" {
			fmt.Fprintf(output, "Error: %s\n", run.Error)
		}
	}

	return nil
}

func outputActionsText(output *os.File, runID string, actions []history.Action) error {
	fmt.Fprintf(output, "Run ID: %s\n", runID)
	fmt.Fprintf(output, "Actions: %d\n", len(actions))
	fmt.Fprintln(output)

	if len(actions) == 0 {
		fmt.Fprintln(output, "No actions recorded.")
		return nil
	}

	for i, action := range actions {
		if i > 0 {
			fmt.Fprintln(output)
		}

		fmt.Fprintf(output, "Tier: %s\n", action.Tier)
		fmt.Fprintf(output, "Action: %s\n", action.Kind)
		if action.ArchivePath != "" {
			fmt.Fprintf(output, "Archive: %s\n", action.ArchivePath)
		}
		if action.Detail != "" {
			fmt.Fprintf(output, "Detail: %s\n", action.Detail)
		}
		fmt.Fprintf(output, "Recorded: %s\n", action.RecordedAt.Format(time.RFC3339))
	}

	return nil
}

func outputHistoryJSON(output *os.File, result map[string]interface{}) error {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
