// Package scheduler runs the optional sweep that closes pending reservations
// whose stay ended without confirmation. Booking correctness never depends on it.
package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type staleCanceller interface {
	CancelStalePending(ctx context.Context) (int, error)
}

type Scheduler struct {
	canceller staleCanceller
	interval  time.Duration
	logger    logger.Logger
}

func New(canceller staleCanceller, interval time.Duration, log logger.Logger) *Scheduler {
	return &Scheduler{canceller: canceller, interval: interval, logger: log}
}

// Start sweeps once right away, so a restart catches up, and then on every tick
// until ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("pending sweep started", logger.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.sweep(ctx)

		select {
		case <-ctx.Done():
			s.logger.Info("pending sweep stopped")
			return
		case <-ticker.C:
		}
	}
}

func (s *Scheduler) sweep(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	started := time.Now()
	n, err := s.canceller.CancelStalePending(ctx)
	if err != nil {
		s.logger.Error("pending sweep failed",
			logger.String("error", err.Error()),
		)
		return
	}

	if n > 0 {
		s.logger.Info("ended pending reservations cancelled",
			logger.Int("count", n),
			logger.Duration("took", time.Since(started)),
		)
	}
}
