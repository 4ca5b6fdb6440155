package minecraft

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mcstatus-io/mcutil/v3"
)

// ServerStatus summarizes a server list ping, plus the player name list
// when a full query was requested.
type ServerStatus struct {
	Host          string   `json:"host"`
	Port          uint16   `json:"port"`
	Version       string   `json:"version"`
	MOTD          string   `json:"motd"`
	OnlinePlayers int64    `json:"online_players"`
	MaxPlayers    int64    `json:"max_players"`
	LatencyMS     int64    `json:"latency_ms"`
	Players       []string `json:"players,omitempty"`
}

// String renders the status for the text output format.
func (s *ServerStatus) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:%d\n", s.Host, s.Port)
	fmt.Fprintf(&b, "  version: %s\n", s.Version)
	fmt.Fprintf(&b, "  motd:    %s\n", s.MOTD)
	fmt.Fprintf(&b, "  players: %d/%d\n", s.OnlinePlayers, s.MaxPlayers)
	fmt.Fprintf(&b, "  latency: %dms", s.LatencyMS)
	if len(s.Players) > 0 {
		fmt.Fprintf(&b, "\n  online:  %s", strings.Join(s.Players, ", "))
	}
	return b.String()
}

// StatusClient queries a running server over the network: the server
// list ping for the summary, and the full query protocol for player
// names (the latter requires enable-query=true in server.properties).
type StatusClient struct {
	host    string
	port    uint16
	timeout time.Duration
}

// NewStatusClient creates a client for the given address.
func NewStatusClient(host string, port uint16, timeout time.Duration) *StatusClient {
	return &StatusClient{host: host, port: port, timeout: timeout}
}

// Status pings the server. With withPlayers set it additionally runs a
// full query for the player name list.
func (s *StatusClient) Status(ctx context.Context, withPlayers bool) (*ServerStatus, error) {
	ctx, cancel := withOptionalTimeout(ctx, s.timeout)
	defer cancel()

	pingStart := time.Now()
	resp, err := mcutil.Status(ctx, s.host, s.port)
	if err != nil {
		return nil, fmt.Errorf("pinging %s:%d: %w", s.host, s.port, err)
	}

	status := &ServerStatus{
		Host:      s.host,
		Port:      s.port,
		Version:   resp.Version.NameClean,
		MOTD:      strings.TrimSpace(resp.MOTD.Clean),
		LatencyMS: time.Since(pingStart).Milliseconds(),
	}
	if resp.Players.Online != nil {
		status.OnlinePlayers = *resp.Players.Online
	}
	if resp.Players.Max != nil {
		status.MaxPlayers = *resp.Players.Max
	}

	if withPlayers {
		query, err := mcutil.FullQuery(ctx, s.host, s.port)
		if err != nil {
			return nil, fmt.Errorf("querying %s:%d: %w", s.host, s.port, err)
		}
		status.Players = query.Players
	}

	return status, nil
}
