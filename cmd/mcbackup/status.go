package main

import (
	"os"
	"time"

	"github.com/Gredelston/minecraft-scripts/pkg/cli"
	"github.com/Gredelston/minecraft-scripts/pkg/minecraft"
	"github.com/spf13/cobra"
)

var statusFlags struct {
	host    string
	port    uint16
	players bool
	format  string
	timeout time.Duration
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Ping the Minecraft server",
	Long: `Ping the Minecraft server and print its advertised status.

The basic ping reports the server version, message of the day, player
counts, and round-trip latency. With --players the server is also asked
for the names of everyone online, which requires query to be enabled in
server.properties.

Examples:
  # Ping the configured server
  mcbackup status

  # Include the online player list
  mcbackup status --players

  # Ping a different host
  mcbackup status --host mc.example.com --port 25565

  # Machine-readable output
  mcbackup status --format json`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringVar(&statusFlags.host, "host", "", "server host (uses config if not specified)")
	statusCmd.Flags().Uint16Var(&statusFlags.port, "port", 0, "server port (uses config if not specified)")
	statusCmd.Flags().BoolVar(&statusFlags.players, "players", false, "include the online player name list")
	statusCmd.Flags().StringVar(&statusFlags.format, "format", "text", "output format: text, json")
	statusCmd.Flags().DurationVar(&statusFlags.timeout, "timeout", 5*time.Second, "ping timeout")
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	host := statusFlags.host
	if host == "" {
		host = cfg.Server.Host
	}
	port := statusFlags.port
	if port == 0 {
		port = cfg.Server.Port
	}

	formatter, err := cli.NewFormatter(cli.OutputFormat(statusFlags.format))
	if err != nil {
		return err
	}

	client := minecraft.NewStatusClient(host, port, statusFlags.timeout)
	status, err := client.Status(cmd.Context(), statusFlags.players)
	if err != nil {
		return cli.NewCommandError("status", err)
	}

	return formatter.FormatTo(os.Stdout, status)
}
