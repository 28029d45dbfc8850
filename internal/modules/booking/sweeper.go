// README: Background sweeper expiring stale pending trips on a fixed interval.
package booking

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sweeper periodically expires pending trips through the same transition
// guards any caller uses. A failed run is logged and retried on the next
// tick; the sweep is idempotent.
type Sweeper struct {
	svc        *Service
	interval   time.Duration
	pendingTTL time.Duration
	log        *zap.Logger
}

func NewSweeper(svc *Service, interval, pendingTTL time.Duration, log *zap.Logger) *Sweeper {
	return &Sweeper{svc: svc, interval: interval, pendingTTL: pendingTTL, log: log}
}

// Run blocks until ctx is cancelled. Start it from main as a goroutine.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.svc.ExpirePending(ctx, s.pendingTTL)
			if err != nil {
				s.log.Error("expiry sweep failed", zap.Error(err))
				continue
			}
			if n > 0 {
				s.log.Info("expired stale trip requests", zap.Int64("count", n))
			}
		}
	}
}
