/*
Package cli provides command-line interface utilities for the mcbackup
command: typed errors for exit-status decisions, output formatters, and
signal helpers.

Output Formatting:

Commands that print structured results (status, history) support text and
JSON output:

	formatter, err := cli.NewFormatter(cli.FormatJSON)
	if err != nil {
		return err
	}
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
		return err
	}

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Use ctx for operations that should be cancelled on shutdown
*/
package cli
