package main

import (
	"fmt"
	"os"

	"github.com/Gredelston/minecraft-scripts/pkg/cli"
	"github.com/Gredelston/minecraft-scripts/pkg/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mcbackup",
	Short: "Tiered backup manager for a systemd-run Minecraft server",
	Long: `Mcbackup keeps rolling daily, weekly, and monthly backups of a
Minecraft server's data directory.

A backup pass stops the server, archives the data directory into every
tier that is due, restarts the server, and prunes archives that have
outlived their tier's retention. The backup directories themselves are
the source of truth: a tier is due whenever its newest archive is older
than the tier's cadence, so missed runs catch up on their own.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (built-in defaults when omitted)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig initializes the global configuration from the --config
// flag and applies flag-level overrides.
func loadConfig() (*config.Config, error) {
	if err := config.Initialize(cfgFile); err != nil {
		return nil, cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}
	cfg := config.GetConfig()

	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}
	return cfg, nil
}
