package sweeper

//go:generate mockgen -source=sweeper.go -destination=mock_sweeper.go -package=sweeper

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Service interface {
	SweepExpired(ctx context.Context, threshold time.Duration) (int64, error)
}

// Sweeper periodically fails reservations left unpaid past the threshold.
type Sweeper struct {
	service   Service
	interval  time.Duration
	threshold time.Duration
}

const DefaultInterval = 10 * time.Second

// New builds a sweeper. A non-positive interval falls back to DefaultInterval.
func New(service Service, interval, threshold time.Duration) *Sweeper {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Sweeper{
		service:   service,
		interval:  interval,
		threshold: threshold,
	}
}

func (s *Sweeper) Threshold() time.Duration {
	return s.threshold
}

// Start sweeps on every tick and blocks until ctx is canceled.
func (s *Sweeper) Start(ctx context.Context) {
	zap.L().Info("Expiry sweeper started", zap.Duration("interval", s.interval), zap.Duration("threshold", s.threshold))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweeper")
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil {
				zap.L().Error("Failed to sweep expired orders", zap.Error(err))
			}
		}
	}
}

// Sweep runs one pass and reports how many orders were failed.
func (s *Sweeper) Sweep(ctx context.Context) (int64, error) {
	return s.service.SweepExpired(ctx, s.threshold)
}

func (s *Sweeper) Interval() time.Duration {
	return s.interval
}
