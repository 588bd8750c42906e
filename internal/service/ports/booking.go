package ports

import (
	"context"
	"time"

	"github.com/mauryatalluru/neartools/internal/domain"
)

type BookingRepo interface {
	// Create inserts a confirmed booking. The availability check and the
	// insert happen inside one per-tool critical section; losing the race
	// surfaces as domain.ErrNotAvailable.
	Create(ctx context.Context, b *domain.Booking) error
	// Cancel flips a confirmed booking to cancelled and returns it.
	// Only the booking's borrower may cancel, and only once.
	Cancel(ctx context.Context, bookingID, borrowerID string) (*domain.Booking, error)
	ListByBorrower(ctx context.Context, borrowerID string) ([]*domain.BorrowerBooking, error)
	ConfirmedRangesFor(ctx context.Context, toolIDs []string) (map[string][]domain.DateRange, error)
	RecentCounts(ctx context.Context, toolIDs []string, since time.Time) (map[string]int, error)
	HasEndedBooking(ctx context.Context, toolID, borrowerID string, today time.Time) (bool, error)
	// MarkReturnsDue flags confirmed bookings whose end date has passed and
	// returns the ones flagged this call, so reminders go out exactly once.
	MarkReturnsDue(ctx context.Context, today time.Time) ([]*domain.Booking, error)
}
