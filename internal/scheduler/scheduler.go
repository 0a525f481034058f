package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/07-Dili/Bike-RentalBooking-System/internal/domain"
)

type bookingSweeper interface {
	FailStale(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler periodically sweeps stale pending bookings into failed. Pending
// bookings never block other holders, so the sweep is bookkeeping, not a
// correctness requirement.
type Scheduler struct {
	bookingService bookingSweeper
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	failed, err := s.bookingService.FailStale(ctx)
	if err != nil {
		s.logger.Error("failed to sweep stale bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range failed {
		s.logger.Info("pending booking expired",
			logger.String("booking_id", b.ID),
			logger.String("holder_id", b.HolderID),
			logger.String("bike_id", b.BikeID),
		)
	}
}
