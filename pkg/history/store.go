package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// Config configures the history store.
type Config struct {
	// Path is the SQLite database file path.
	Path string

	// BusyTimeout is how long to wait for locks before failing.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// Store is the SQLite-backed audit trail of backup runs.
type Store struct {
	db     *sql.DB
	logger *slog.Logger

	insertRunStmt    *sql.Stmt
	finishRunStmt    *sql.Stmt
	insertActionStmt *sql.Stmt
}

// Run is one recorded backup run.
type Run struct {
	ID         string    `json:"id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at,omitzero"`
	Status     string    `json:"status"`
	DryRun     bool      `json:"dry_run"`
	Error      string    `json:"error,omitempty"`
}

// Action is one tier decision within a run.
type Action struct {
	ID          int64     `json:"id"`
	RunID       string    `json:"run_id"`
	Tier        string    `json:"tier"`
	Kind        string    `json:"kind"`
	ArchivePath string    `json:"archive_path,omitempty"`
	Detail      string    `json:"detail,omitempty"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// statusRunning marks a run that has started but not finished. FinishRun
// replaces it with the driver's final status.
const statusRunning = "running"

// Open opens the history database at cfg.Path, creating the file and
// schema as needed.
func Open(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("history db path cannot be empty")
	}
	if cfg.BusyTimeout == 0 {
		cfg.BusyTimeout = 5 * time.Second
	}

	// The modernc driver takes pragmas as repeated _pragma parameters.
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)",
		cfg.Path, cfg.BusyTimeout.Milliseconds())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// SQLite supports a single writer; one connection avoids lock churn.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := &Store{
		db:     db,
		logger: slog.Default().With("component", "history.store"),
	}

	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// initialize creates the schema and records the schema version.
func (s *Store) initialize() error {
	if _, err := s.db.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create history schema: %w", err)
	}
	if _, err := s.db.Exec(InsertSchemaVersion, SchemaVersion); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}

	var version int
	if err := s.db.QueryRow(GetSchemaVersion).Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version != SchemaVersion {
		return fmt.Errorf("history schema version mismatch: have %d, want %d", version, SchemaVersion)
	}
	return nil
}

func (s *Store) prepareStatements() error {
	var err error

	s.insertRunStmt, err = s.db.Prepare(
		`INSERT INTO runs (id, started_at, status, dry_run) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare run insert: %w", err)
	}

	s.finishRunStmt, err = s.db.Prepare(
		`UPDATE runs SET finished_at = ?, status = ?, error = ? WHERE id = ?`)
	if err != nil {
		return fmt.Errorf("failed to prepare run update: %w", err)
	}

	s.insertActionStmt, err = s.db.Prepare(
		`INSERT INTO actions (run_id, tier, kind, archive_path, detail, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare action insert: %w", err)
	}

	return nil
}

// StartRun records the beginning of a run.
func (s *Store) StartRun(ctx context.Context, id string, startedAt time.Time, dryRun bool) error {
	if _, err := s.insertRunStmt.ExecContext(ctx, id, startedAt.Unix(), statusRunning, dryRun); err != nil {
		return fmt.Errorf("recording run start: %w", err)
	}
	return nil
}

// FinishRun records a run's final status and, for failed runs, the
// error text.
func (s *Store) FinishRun(ctx context.Context, id string, finishedAt time.Time, status, errText string) error {
	var errVal any
	if errText != "" {
		errVal = errText
	}
	if _, err := s.finishRunStmt.ExecContext(ctx, finishedAt.Unix(), status, errVal, id); err != nil {
		return fmt.Errorf("recording run finish: %w", err)
	}
	return nil
}

// RecordAction records one tier decision for a run.
func (s *Store) RecordAction(ctx context.Context, runID, tier, kind, archivePath, detail string) error {
	if _, err := s.insertActionStmt.ExecContext(ctx,
		runID, tier, kind, archivePath, detail, time.Now().Unix()); err != nil {
		return fmt.Errorf("recording action: %w", err)
	}
	return nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, finished_at, status, dry_run, error
		 FROM runs ORDER BY started_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run        Run
			startedAt  int64
			finishedAt sql.NullInt64
			errText    sql.NullString
		)
		if err := rows.Scan(&run.ID, &startedAt, &finishedAt, &run.Status, &run.DryRun, &errText); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		run.StartedAt = time.Unix(startedAt, 0).UTC()
		if finishedAt.Valid {
			run.FinishedAt = time.Unix(finishedAt.Int64, 0).UTC()
		}
		run.Error = errText.String
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// RunActions returns a run's recorded actions in the order they
// happened.
func (s *Store) RunActions(ctx context.Context, runID string) ([]Action, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run_id, tier, kind, archive_path, detail, recorded_at
		 FROM actions WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying actions: %w", err)
	}
	defer rows.Close()

	var actions []Action
	for rows.Next() {
		var (
			action     Action
			recordedAt int64
		)
		if err := rows.Scan(&action.ID, &action.RunID, &action.Tier, &action.Kind,
			&action.ArchivePath, &action.Detail, &recordedAt); err != nil {
			return nil, fmt.Errorf("scanning action: %w", err)
		}
		action.RecordedAt = time.Unix(recordedAt, 0).UTC()
		actions = append(actions, action)
	}
	return actions, rows.Err()
}

// Close closes the database.
func (s *Store) Close() error {
	for _, stmt := range []*sql.Stmt{s.insertRunStmt, s.finishRunStmt, s.insertActionStmt} {
		if stmt != nil {
			stmt.Close()
		}
	}
	return s.db.Close()
}
