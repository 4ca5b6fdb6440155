package minecraft

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/Gredelston/minecraft-scripts/pkg/proc"
)

// gametimeCommand is sent verbatim as a single argument to the rcon
// helper script.
const gametimeCommand = "time query gametime"

// gametimePattern matches the server's reply, "The time is <ticks>".
var gametimePattern = regexp.MustCompile(`The time is (\d+)`)

// ControlChannelError describes a failed gametime exchange over the rcon
// side channel. Callers see it in logs only: the backup flow treats the
// gametime as optional and never fails on it.
type ControlChannelError struct {
	Script string
	Reason string
	Err    error
}

func (e *ControlChannelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rcon %s: %s: %v", e.Script, e.Reason, e.Err)
	}
	return fmt.Sprintf("rcon %s: %s", e.Script, e.Reason)
}

func (e *ControlChannelError) Unwrap() error {
	return e.Err
}

// GametimeClient reads the server's in-game clock through the rcon
// helper script. The value is kept as the string the server reported;
// nothing downstream does arithmetic on it.
type GametimeClient struct {
	runner  proc.Runner
	script  string
	timeout time.Duration
	logger  *slog.Logger
}

// NewGametimeClient creates a client using the rcon script at the given
// path. A zero timeout means no bound beyond the caller's context.
func NewGametimeClient(runner proc.Runner, script string, timeout time.Duration) *GametimeClient {
	return &GametimeClient{
		runner:  runner,
		script:  script,
		timeout: timeout,
		logger:  slog.Default().With("component", "minecraft.gametime"),
	}
}

// Gametime returns the server's current gametime tick count and whether
// one was obtained. Every failure mode (missing script, failed command,
// unrecognizable reply) degrades to ("", false) with a warning; the
// server must be running, so call this before stopping it.
func (g *GametimeClient) Gametime(ctx context.Context) (string, bool) {
	gametime, err := g.query(ctx)
	if err != nil {
		g.logger.Warn("proceeding without gametime", "error", err)
		return "", false
	}
	return gametime, true
}

func (g *GametimeClient) query(ctx context.Context) (string, error) {
	ctx, cancel := withOptionalTimeout(ctx, g.timeout)
	defer cancel()

	out, err := g.runner.Run(ctx, g.script, gametimeCommand)
	if errors.Is(err, fs.ErrNotExist) {
		return "", &ControlChannelError{Script: g.script, Reason: "rcon script not found"}
	}
	if err != nil {
		return "", &ControlChannelError{Script: g.script, Reason: "gametime query failed", Err: err}
	}

	match := gametimePattern.FindStringSubmatch(out)
	if match == nil {
		return "", &ControlChannelError{
			Script: g.script,
			Reason: fmt.Sprintf("could not parse gametime from %q", strings.TrimSpace(out)),
		}
	}
	return match[1], nil
}
