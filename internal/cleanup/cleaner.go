package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/web3hub/hub-engine/internal/session"
)

// Cleaner handles periodic removal of expired sessions
type Cleaner struct {
	manager  *session.Manager
	interval time.Duration
}

// NewCleaner creates a new cleanup worker
func NewCleaner(manager *session.Manager, interval time.Duration) *Cleaner {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	return &Cleaner{
		manager:  manager,
		interval: interval,
	}
}

// Start begins the cleanup worker in a goroutine
func (c *Cleaner) Start(ctx context.Context) {
	go c.run(ctx)
}

// run is the main loop for the cleanup worker
func (c *Cleaner) run(ctx context.Context) {
	slog.Info("cleanup worker started", "interval", c.interval)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	// Run immediately on start
	c.cleanup(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("cleanup worker stopped")
			return
		case <-ticker.C:
			c.cleanup(ctx)
		}
	}
}

// cleanup sweeps expired sessions out of the store
func (c *Cleaner) cleanup(ctx context.Context) {
	slog.Debug("running cleanup cycle")

	deleted, err := c.manager.DeleteExpired(ctx)
	if err != nil {
		slog.Error("failed to sweep expired sessions", "error", err)
		return
	}

	if deleted > 0 {
		slog.Info("expired sessions deleted", "count", deleted)
	}
}
