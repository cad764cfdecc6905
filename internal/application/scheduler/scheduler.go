package scheduler

import (
	"context"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/catalog-sync/internal/cache"
)

// Store is anything that can start a background refresh.
type Store interface {
	Refresh() *cache.Pending
}

// Scheduler refreshes every store on a fixed interval. A tick never waits
// for the previous refresh: a store that is still fetching hands back its
// running call instead of starting another.
type Scheduler struct {
	stores   map[string]Store
	interval time.Duration
	logger   *zap.Logger
}

func New(stores map[string]Store, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{stores: stores, interval: interval, logger: logger}
}

// Run blocks until ctx is done. A non-positive interval disables it.
func (s *Scheduler) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info("periodic refresh disabled")
		return
	}

	names := make([]string, 0, len(s.stores))
	for name := range s.stores {
		names = append(names, name)
	}
	slices.Sort(names)

	s.logger.Info("periodic refresh started", zap.Duration("interval", s.interval), zap.Strings("stores", names))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, name := range names {
				go s.await(ctx, name, s.stores[name].Refresh())
			}
		}
	}
}

func (s *Scheduler) await(ctx context.Context, name string, p *cache.Pending) {
	start := time.Now()
	if err := p.Wait(ctx); err != nil {
		if ctx.Err() == nil {
			s.logger.Warn("scheduled refresh failed", zap.String("store", name), zap.Error(err))
		}
		return
	}
	s.logger.Debug("scheduled refresh done", zap.String("store", name), zap.Duration("elapsed", time.Since(start)))
}
