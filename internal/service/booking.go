package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/mauryatalluru/neartools/internal/domain"
	"github.com/mauryatalluru/neartools/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	toolRepo    ports.ToolRepo
	userRepo    ports.UserRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	toolRepo ports.ToolRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		toolRepo:    toolRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Book reserves [start, end] inclusive. Cost is daily price times the
// inclusive day count, rounded to cents once here so the stored total is
// exactly what the borrower was quoted.
func (s *BookingService) Book(ctx context.Context, toolID, borrowerID string, start, end time.Time) (*domain.Booking, error) {
	if end.Before(start) {
		return nil, domain.ErrInvalidDateRange
	}

	tool, err := s.toolRepo.GetByID(ctx, toolID)
	if err != nil {
		return nil, fmt.Errorf("check tool: %w", err)
	}

	borrower, err := s.userRepo.GetByID(ctx, borrowerID)
	if err != nil {
		return nil, fmt.Errorf("check borrower: %w", err)
	}

	days := domain.DaysInclusive(start, end)
	booking := &domain.Booking{
		ID:         uuid.New().String(),
		ToolID:     toolID,
		BorrowerID: borrowerID,
		StartDate:  start,
		EndDate:    end,
		TotalCost:  roundCents(tool.DailyPrice * float64(days)),
		Status:     domain.BookingStatusConfirmed,
		CreatedAt:  time.Now().UTC(),
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("tool_id", toolID),
		logger.String("borrower_id", borrowerID),
		logger.Int("days", days),
	)

	go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), borrower, tool, booking)

	return booking, nil
}

// Cancel frees the booking's date range immediately. Only the borrower
// who made it may cancel, and only while it is still confirmed.
func (s *BookingService) Cancel(ctx context.Context, bookingID, borrowerID string) error {
	booking, err := s.bookingRepo.Cancel(ctx, bookingID, borrowerID)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", booking.ID),
		logger.String("tool_id", booking.ToolID),
	)

	go s.notifyCancelled(context.WithoutCancel(ctx), booking)

	return nil
}

func (s *BookingService) notifyCancelled(ctx context.Context, booking *domain.Booking) {
	borrower, err := s.userRepo.GetByID(ctx, booking.BorrowerID)
	if err != nil {
		s.logger.Error("failed to get borrower for cancel notification",
			logger.String("borrower_id", booking.BorrowerID),
		)
		return
	}

	tool, err := s.toolRepo.GetByID(ctx, booking.ToolID)
	if err != nil {
		s.logger.Error("failed to get tool for cancel notification",
			logger.String("tool_id", booking.ToolID),
		)
		return
	}

	s.notifier.NotifyBookingCancelled(ctx, borrower, tool, booking)
}

func (s *BookingService) ListByBorrower(ctx context.Context, borrowerID string) ([]*domain.BorrowerBooking, error) {
	return s.bookingRepo.ListByBorrower(ctx, borrowerID)
}

// RemindReturnsDue flags bookings whose rental period has ended and
// notifies each borrower once. Called from the scheduler.
func (s *BookingService) RemindReturnsDue(ctx context.Context) ([]*domain.Booking, error) {
	due, err := s.bookingRepo.MarkReturnsDue(ctx, domain.Today())
	if err != nil {
		return nil, fmt.Errorf("mark returns due: %w", err)
	}

	if len(due) > 0 {
		s.logger.Info("return reminders queued",
			logger.Int("count", len(due)),
		)

		go s.notifyReturnsDue(context.WithoutCancel(ctx), due)
	}

	return due, nil
}

func (s *BookingService) notifyReturnsDue(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		borrower, err := s.userRepo.GetByID(ctx, b.BorrowerID)
		if err != nil {
			s.logger.Error("failed to get borrower for return reminder",
				logger.String("borrower_id", b.BorrowerID),
			)
			continue
		}

		tool, err := s.toolRepo.GetByID(ctx, b.ToolID)
		if err != nil {
			s.logger.Error("failed to get tool for return reminder",
				logger.String("tool_id", b.ToolID),
			)
			continue
		}

		s.notifier.NotifyReturnDue(ctx, borrower, tool, b)
	}
}

func roundCents(x float64) float64 {
	return math.Round(x*100) / 100
}
