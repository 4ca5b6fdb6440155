package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// LogFormat represents the output format for logs.
type LogFormat string

const (
	// FormatText outputs logs in plain text format.
	FormatText LogFormat = "text"
	// FormatJSON outputs logs in JSON format.
	FormatJSON LogFormat = "json"
)

// fileTimeLayout names the per-run log file after the run's start time.
const fileTimeLayout = "20060102-150405"

// Config contains configuration for a run's logging.
type Config struct {
	// Level is the minimum log level ("debug", "info", "warn", "error")
	Level string

	// Format is the output format ("text", "json")
	Format string

	// Dir is the directory receiving the per-run log file. Empty logs to
	// the console only.
	Dir string

	// Console is the always-on output writer (defaults to os.Stderr)
	Console io.Writer
}

// Run couples a root logger with the run's log artifact. Every run gets
// one uniquely named log file alongside console output, so a bad night
// can be reconstructed from the backup host after the fact.
type Run struct {
	// Logger is the root logger with the run's identity attached.
	Logger *slog.Logger

	// FilePath is the run's log file, or "" when logging console-only.
	FilePath string

	file *os.File
}

// New builds the logger for one run starting at the given time. The log
// file is named "<start>.log" after the run's start timestamp. Opening
// it is best-effort: on failure a warning goes to the console and the
// run proceeds console-only rather than not at all.
func New(cfg Config, runID string, start time.Time) (*Run, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	format, err := parseFormat(cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("invalid log format: %w", err)
	}

	console := cfg.Console
	if console == nil {
		console = os.Stderr
	}

	run := &Run{}
	writer := console
	var openErr error
	if cfg.Dir != "" {
		path := filepath.Join(cfg.Dir, start.Format(fileTimeLayout)+".log")
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			openErr = err
		} else {
			run.file = file
			run.FilePath = path
			writer = io.MultiWriter(console, file)
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(writer, opts)
	default:
		handler = slog.NewTextHandler(writer, opts)
	}

	logger := slog.New(handler)
	if runID != "" {
		logger = logger.With("run_id", runID)
	}
	run.Logger = logger

	if openErr != nil {
		logger.Warn("could not open run log file, continuing console-only",
			"dir", cfg.Dir, "error", openErr)
	}

	return run, nil
}

// Close closes the run's log file, if one was opened.
func (r *Run) Close() error {
	if r.file == nil {
		return nil
	}
	return r.file.Close()
}

// parseLevel parses a log level string into slog.Level.
func parseLevel(levelStr string) (slog.Level, error) {
	switch levelStr {
	case "debug", "DEBUG":
		return slog.LevelDebug, nil
	case "info", "INFO", "":
		return slog.LevelInfo, nil
	case "warn", "WARN", "warning", "WARNING":
		return slog.LevelWarn, nil
	case "error", "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", levelStr)
	}
}

// parseFormat parses a log format string into LogFormat.
func parseFormat(formatStr string) (LogFormat, error) {
	switch formatStr {
	case "text", "TEXT", "":
		return FormatText, nil
	case "json", "JSON":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unknown log format: %s", formatStr)
	}
}
