package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(Config{Path: filepath.Join(t.TempDir(), "history.db")})
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpen_EmptyPath(t *testing.T) {
	if _, err := Open(Config{}); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestOpen_ReopenExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	first, err := Open(Config{Path: path})
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := first.StartRun(context.Background(), "run-1", time.Now(), false); err != nil {
		t.Fatalf("start run: %v", err)
	}
	first.Close()

	second, err := Open(Config{Path: path})
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer second.Close()

	runs, err := second.RecentRuns(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent runs: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != "run-1" {
		t.Errorf("expected run-1 to survive reopen, got %+v", runs)
	}
}

func TestStore_RunLifecycle(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	started := time.Date(2023, 6, 15, 5, 0, 0, 0, time.UTC)
	finished := started.Add(90 * time.Second)

	if err := store.StartRun(ctx, "run-1", started, true); err != nil {
		t.Fatalf("start run: %v", err)
	}
	if err := store.FinishRun(ctx, "run-1", finished, "success", ""); err != nil {
		t.Fatalf("finish run: %v", err)
	}

	runs, err := store.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatalf("recent runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}

	run := runs[0]
	if run.ID != "run-1" {
		t.Errorf("expected id run-1, got %q", run.ID)
	}
	if !run.StartedAt.Equal(started) {
		t.Errorf("expected started %v, got %v", started, run.StartedAt)
	}
	if !run.FinishedAt.Equal(finished) {
		t.Errorf("expected finished %v, got %v", finished, run.FinishedAt)
	}
	if run.Status != "success" {
		t.Errorf("expected status success, got %q", run.Status)
	}
	if !run.DryRun {
		t.Error("expected dry_run to be recorded")
	}
	if run.Error != "" {
		t.Errorf("expected no error text, got %q", run.Error)
	}
}

func TestStore_FailedRunKeepsErrorText(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	now := time.Now()
	if err := store.StartRun(ctx, "run-1", now, false); err != nil {
		t.Fatalf("start run: %v", err)
	}
	if err := store.FinishRun(ctx, "run-1", now.Add(time.Second), "failed", "server stop failed"); err != nil {
		t.Fatalf("finish run: %v", err)
	}

	runs, err := store.RecentRuns(ctx, 1)
	if err != nil {
		t.Fatalf("recent runs: %v", err)
	}
	if runs[0].Status != "failed" || runs[0].Error != "server stop failed" {
		t.Errorf("expected failed run with error text, got %+v", runs[0])
	}
}

func TestStore_UnfinishedRunHasZeroFinishTime(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	if err := store.StartRun(ctx, "run-1", time.Now(), false); err != nil {
		t.Fatalf("start run: %v", err)
	}

	runs, err := store.RecentRuns(ctx, 1)
	if err != nil {
		t.Fatalf("recent runs: %v", err)
	}
	if !runs[0].FinishedAt.IsZero() {
		t.Errorf("expected zero finish time, got %v", runs[0].FinishedAt)
	}
	if runs[0].Status != "running" {
		t.Errorf("expected status running, got %q", runs[0].Status)
	}
}

func TestStore_RecentRunsNewestFirst(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	base := time.Date(2023, 6, 1, 5, 0, 0, 0, time.UTC)
	for i, id := range []string{"run-a", "run-b", "run-c"} {
		if err := store.StartRun(ctx, id, base.Add(time.Duration(i)*time.Hour), false); err != nil {
			t.Fatalf("start run %s: %v", id, err)
		}
	}

	runs, err := store.RecentRuns(ctx, 2)
	if err != nil {
		t.Fatalf("recent runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(runs))
	}
	if runs[0].ID != "run-c" || runs[1].ID != "run-b" {
		t.Errorf("expected newest first, got %s then %s", runs[0].ID, runs[1].ID)
	}
}

func TestStore_RunActions(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	if err := store.StartRun(ctx, "run-1", time.Now(), false); err != nil {
		t.Fatalf("start run: %v", err)
	}

	actions := []struct {
		tier, kind, path, detail string
	}{
		{"daily", "created", "/backups/daily/backup-20230615-050000.tar.gz", ""},
		{"weekly", "skipped", "", "cadence satisfied"},
		{"daily", "pruned", "/backups/daily/backup-20230610-050000.tar.gz", ""},
	}
	for _, a := range actions {
		if err := store.RecordAction(ctx, "run-1", a.tier, a.kind, a.path, a.detail); err != nil {
			t.Fatalf("record action: %v", err)
		}
	}
	// An unrelated run's actions must not bleed in.
	if err := store.RecordAction(ctx, "run-2", "daily", "created", "", ""); err != nil {
		t.Fatalf("record action: %v", err)
	}

	got, err := store.RunActions(ctx, "run-1")
	if err != nil {
		t.Fatalf("run actions: %v", err)
	}
	if len(got) != len(actions) {
		t.Fatalf("expected %d actions, got %d", len(actions), len(got))
	}
	for i, want := range actions {
		if got[i].Tier != want.tier || got[i].Kind != want.kind {
			t.Errorf("action %d: expected %s/%s, got %s/%s",
				i, want.tier, want.kind, got[i].Tier, got[i].Kind)
		}
		if got[i].ArchivePath != want.path {
			t.Errorf("action %d: expected path %q, got %q", i, want.path, got[i].ArchivePath)
		}
		if got[i].RecordedAt.IsZero() {
			t.Errorf("action %d: expected recorded_at to be set", i)
		}
	}
}

func TestStore_RunActionsEmpty(t *testing.T) {
	store := testStore(t)

	actions, err := store.RunActions(context.Background(), "nope")
	if err != nil {
		t.Fatalf("run actions: %v", err)
	}
	if len(actions) != 0 {
		t.Errorf("expected no actions, got %d", len(actions))
	}
}
