package minecraft

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Gredelston/minecraft-scripts/pkg/proc"
)

// systemctl is invoked through sudo by absolute path, keeping the
// required sudoers entry narrow.
const systemctlPath = "/usr/bin/systemctl"

// Controller stops and starts the server process through its systemd
// unit. Both operations block until systemctl reports completion, so a
// returned nil means the unit actually reached the requested state.
type Controller struct {
	runner       proc.Runner
	service      string
	stopTimeout  time.Duration
	startTimeout time.Duration
	logger       *slog.Logger
}

// NewController creates a controller for the given systemd service unit.
// Zero timeouts mean no bound beyond the caller's context.
func NewController(runner proc.Runner, service string, stopTimeout, startTimeout time.Duration) *Controller {
	return &Controller{
		runner:       runner,
		service:      service,
		stopTimeout:  stopTimeout,
		startTimeout: startTimeout,
		logger:       slog.Default().With("component", "minecraft.controller"),
	}
}

// Stop stops the server. The world must be quiescent before archiving,
// so callers abort their backup when this fails.
func (c *Controller) Stop(ctx context.Context) error {
	c.logger.Info("stopping minecraft server", "service", c.service)

	ctx, cancel := withOptionalTimeout(ctx, c.stopTimeout)
	defer cancel()

	if _, err := c.runner.Run(ctx, "sudo", systemctlPath, "stop", c.service); err != nil {
		return fmt.Errorf("stopping %s: %w", c.service, err)
	}
	return nil
}

// Start starts the server.
func (c *Controller) Start(ctx context.Context) error {
	c.logger.Info("starting minecraft server", "service", c.service)

	ctx, cancel := withOptionalTimeout(ctx, c.startTimeout)
	defer cancel()

	if _, err := c.runner.Run(ctx, "sudo", systemctlPath, "start", c.service); err != nil {
		return fmt.Errorf("starting %s: %w", c.service, err)
	}
	return nil
}

func withOptionalTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
