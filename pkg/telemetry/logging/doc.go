// Package logging builds the structured logger for one backup run.
//
// # Overview
//
// The package wraps Go's standard log/slog. Each run logs to the console
// and, when a log directory is configured, to a per-run file named after
// the run's start timestamp (20230101-050000.log). The file sits next to
// the backups it describes, so diagnosing a failed night needs nothing
// but the backup host.
//
// Opening the log file is best-effort: a run that cannot write its log
// file still backs up the server.
//
// # Usage
//
//	run, err := logging.New(logging.Config{
//	    Level:  "info",
//	    Format: "text",
//	    Dir:    "/srv/minecraft/backups/logs",
//	}, runID, time.Now())
//	if err != nil {
//	    return err
//	}
//	defer run.Close()
//	slog.SetDefault(run.Logger)
package logging
