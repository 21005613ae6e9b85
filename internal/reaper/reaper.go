package reaper

import (
	"context"
	"time"

	"github.com/amalpanikulangara/arreWhatsapp/config"
	"github.com/amalpanikulangara/arreWhatsapp/internal/chat"
	"github.com/amalpanikulangara/arreWhatsapp/pkg/logger"
)

// Reaper periodically evicts expired messages from every group that has
// disappearing messages enabled. It shares the group row lock with message
// appends, so a sweep never interleaves with an in-progress append.
type Reaper struct {
	repo   chat.MessageRepository
	ttl    time.Duration
	every  time.Duration
	logger *logger.Logger
}

func New(repo chat.MessageRepository, cfg *config.Config, logger *logger.Logger) *Reaper {
	return &Reaper{
		repo:   repo,
		ttl:    cfg.Retention.TTL,
		every:  cfg.Retention.SweepInterval,
		logger: logger,
	}
}

// Run blocks until ctx is cancelled, sweeping once per interval. Sweep
// failures are logged and retried on the next cycle; they never propagate
// to request handlers.
func (r *Reaper) Run(ctx context.Context) {
	r.logger.Info("starting retention sweeper", "ttl", r.ttl, "interval", r.every)

	ticker := time.NewTicker(r.every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sweep(ctx)
		case <-ctx.Done():
			r.logger.Info("stopping retention sweeper")
			return
		}
	}
}

func (r *Reaper) sweep(ctx context.Context) {
	groupIDs, err := r.repo.DisappearingGroupIDs(ctx)
	if err != nil {
		r.logger.Error("sweep: failed to list groups with retention enabled", "err", err)
		return
	}

	cutoff := time.Now().Add(-r.ttl)
	for _, groupID := range groupIDs {
		evicted, err := r.repo.DeleteExpired(ctx, groupID, cutoff)
		if err != nil {
			// retried next sweep
			r.logger.Error("sweep: eviction failed", "group_id", groupID, "err", err)
			continue
		}
		if evicted > 0 {
			r.logger.Info("sweep: evicted expired messages", "group_id", groupID, "count", evicted)
		}
	}
}
