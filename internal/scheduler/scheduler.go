package scheduler

import (
	"context"
	"time"

	"github.com/mauryatalluru/neartools/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type returnReminder interface {
	RemindReturnsDue(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler periodically reminds borrowers to return tools whose rental
// period has ended.
type Scheduler struct {
	bookingService returnReminder
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService returnReminder,
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
	due, err := s.bookingService.RemindReturnsDue(ctx)
	if err != nil {
		s.logger.Error("failed to process return reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range due {
		s.logger.Info("return due",
			logger.String("booking_id", b.ID),
			logger.String("tool_id", b.ToolID),
			logger.String("borrower_id", b.BorrowerID),
		)
	}
}
