package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mauryatalluru/neartools/internal/domain"
	"github.com/mauryatalluru/neartools/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBookingService_Book(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	toolRepo := mocks.NewMockToolRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, toolRepo, userRepo, notifier, log)

	tool := &domain.Tool{ID: "t1", Name: "Ladder", DailyPrice: 20}
	borrower := &domain.User{ID: "u1", Name: "Alice"}

	toolRepo.EXPECT().GetByID(mock.Anything, "t1").Return(tool, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(borrower, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, borrower, tool, mock.Anything).Return()

	booking, err := svc.Book(context.Background(), "t1", "u1", date(2026, 3, 1), date(2026, 3, 3))

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, "t1", booking.ToolID)
	assert.Equal(t, "u1", booking.BorrowerID)
	assert.NotEmpty(t, booking.ID)
	// 3 inclusive days at $20/day
	assert.Equal(t, 60.0, booking.TotalCost)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Book_SingleDay(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	toolRepo := mocks.NewMockToolRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, toolRepo, userRepo, notifier, log)

	tool := &domain.Tool{ID: "t1", DailyPrice: 12.50}
	borrower := &domain.User{ID: "u1"}

	toolRepo.EXPECT().GetByID(mock.Anything, "t1").Return(tool, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(borrower, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, borrower, tool, mock.Anything).Return()

	day := date(2026, 3, 5)
	booking, err := svc.Book(context.Background(), "t1", "u1", day, day)

	require.NoError(t, err)
	assert.Equal(t, 12.50, booking.TotalCost)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Book_InvalidRange(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	toolRepo := mocks.NewMockToolRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, toolRepo, userRepo, notifier, log)

	_, err := svc.Book(context.Background(), "t1", "u1", date(2026, 3, 3), date(2026, 3, 1))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestBookingService_Book_ToolNotFound(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	toolRepo := mocks.NewMockToolRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, toolRepo, userRepo, notifier, log)

	toolRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrToolNotFound)

	_, err := svc.Book(context.Background(), "missing", "u1", date(2026, 3, 1), date(2026, 3, 2))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrToolNotFound)
}

func TestBookingService_Book_NotAvailable(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	toolRepo := mocks.NewMockToolRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, toolRepo, userRepo, notifier, log)

	toolRepo.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.Tool{ID: "t1", DailyPrice: 5}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrNotAvailable)

	_, err := svc.Book(context.Background(), "t1", "u1", date(2026, 3, 1), date(2026, 3, 2))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotAvailable)
}

func TestBookingService_Cancel(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	toolRepo := mocks.NewMockToolRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, toolRepo, userRepo, notifier, log)

	cancelled := &domain.Booking{
		ID:         "b1",
		ToolID:     "t1",
		BorrowerID: "u1",
		Status:     domain.BookingStatusCancelled,
	}
	borrower := &domain.User{ID: "u1"}
	tool := &domain.Tool{ID: "t1"}

	bookingRepo.EXPECT().Cancel(mock.Anything, "b1", "u1").Return(cancelled, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(borrower, nil)
	toolRepo.EXPECT().GetByID(mock.Anything, "t1").Return(tool, nil)
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, borrower, tool, cancelled).Return()

	err := svc.Cancel(context.Background(), "b1", "u1")

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_NotBorrower(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	toolRepo := mocks.NewMockToolRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, toolRepo, userRepo, notifier, log)

	bookingRepo.EXPECT().Cancel(mock.Anything, "b1", "intruder").Return(nil, domain.ErrNotOwnedByCaller)

	err := svc.Cancel(context.Background(), "b1", "intruder")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotOwnedByCaller)
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	toolRepo := mocks.NewMockToolRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, toolRepo, userRepo, notifier, log)

	bookingRepo.EXPECT().Cancel(mock.Anything, "b1", "u1").Return(nil, domain.ErrBookingNotConfirmed)

	err := svc.Cancel(context.Background(), "b1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotConfirmed)
}

func TestBookingService_ListByBorrower(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	toolRepo := mocks.NewMockToolRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, toolRepo, userRepo, notifier, log)

	expected := []*domain.BorrowerBooking{
		{Booking: domain.Booking{ID: "b1", ToolID: "t1"}, ToolName: "Ladder"},
	}
	bookingRepo.EXPECT().ListByBorrower(mock.Anything, "u1").Return(expected, nil)

	got, err := svc.ListByBorrower(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestBookingService_RemindReturnsDue(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	toolRepo := mocks.NewMockToolRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, toolRepo, userRepo, notifier, log)

	due := []*domain.Booking{
		{ID: "b1", ToolID: "t1", BorrowerID: "u1"},
	}
	borrower := &domain.User{ID: "u1"}
	tool := &domain.Tool{ID: "t1"}

	bookingRepo.EXPECT().MarkReturnsDue(mock.Anything, mock.Anything).Return(due, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(borrower, nil)
	toolRepo.EXPECT().GetByID(mock.Anything, "t1").Return(tool, nil)
	notifier.EXPECT().NotifyReturnDue(mock.Anything, borrower, tool, due[0]).Return()

	got, err := svc.RemindReturnsDue(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_RemindReturnsDue_NothingDue(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	toolRepo := mocks.NewMockToolRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, toolRepo, userRepo, notifier, log)

	bookingRepo.EXPECT().MarkReturnsDue(mock.Anything, mock.Anything).Return(nil, nil)

	got, err := svc.RemindReturnsDue(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBookingService_RemindReturnsDue_RepoError(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	toolRepo := mocks.NewMockToolRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, toolRepo, userRepo, notifier, log)

	bookingRepo.EXPECT().MarkReturnsDue(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.RemindReturnsDue(context.Background())

	require.Error(t, err)
}

// serializingBookingRepo mimics the real repository's per-tool critical
// section with a mutex over an in-memory ledger.
type serializingBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*domain.Booking
}

func (r *serializingBookingRepo) Create(_ context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	want := domain.DateRange{Start: b.StartDate, End: b.EndDate}
	for _, other := range r.bookings {
		if other.ToolID != b.ToolID || other.Status != domain.BookingStatusConfirmed {
			continue
		}
		if want.Overlaps(domain.DateRange{Start: other.StartDate, End: other.EndDate}) {
			return domain.ErrNotAvailable
		}
	}

	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *serializingBookingRepo) Cancel(_ context.Context, bookingID, borrowerID string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[bookingID]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if b.BorrowerID != borrowerID {
		return nil, domain.ErrNotOwnedByCaller
	}
	if b.Status != domain.BookingStatusConfirmed {
		return nil, domain.ErrBookingNotConfirmed
	}

	b.Status = domain.BookingStatusCancelled
	cp := *b
	return &cp, nil
}

func (r *serializingBookingRepo) ListByBorrower(context.Context, string) ([]*domain.BorrowerBooking, error) {
	return nil, nil
}

func (r *serializingBookingRepo) ConfirmedRangesFor(context.Context, []string) (map[string][]domain.DateRange, error) {
	return nil, nil
}

func (r *serializingBookingRepo) RecentCounts(context.Context, []string, time.Time) (map[string]int, error) {
	return nil, nil
}

func (r *serializingBookingRepo) HasEndedBooking(context.Context, string, string, time.Time) (bool, error) {
	return false, nil
}

func (r *serializingBookingRepo) MarkReturnsDue(context.Context, time.Time) ([]*domain.Booking, error) {
	return nil, nil
}

func TestBookingService_Book_ConcurrentOverlap(t *testing.T) {
	toolRepo := mocks.NewMockToolRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	bookingRepo := &serializingBookingRepo{bookings: make(map[string]*domain.Booking)}
	svc := NewBookingService(bookingRepo, toolRepo, userRepo, notifier, log)

	tool := &domain.Tool{ID: "t1", DailyPrice: 10}
	toolRepo.EXPECT().GetByID(mock.Anything, "t1").Return(tool, nil)
	userRepo.EXPECT().GetByID(mock.Anything, mock.Anything).Return(&domain.User{ID: "u"}, nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, mock.Anything, tool, mock.Anything).Return().Maybe()

	const attempts = 8
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Book(context.Background(), "t1", "u1", date(2026, 3, 1), date(2026, 3, 5))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrNotAvailable):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, ok)
	assert.Equal(t, attempts-1, conflicts)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Book_FreedSlotReuse(t *testing.T) {
	toolRepo := mocks.NewMockToolRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	bookingRepo := &serializingBookingRepo{bookings: make(map[string]*domain.Booking)}
	svc := NewBookingService(bookingRepo, toolRepo, userRepo, notifier, log)

	tool := &domain.Tool{ID: "t1", DailyPrice: 10}
	toolRepo.EXPECT().GetByID(mock.Anything, "t1").Return(tool, nil)
	userRepo.EXPECT().GetByID(mock.Anything, mock.Anything).Return(&domain.User{ID: "u"}, nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, mock.Anything, tool, mock.Anything).Return().Maybe()
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, mock.Anything, tool, mock.Anything).Return().Maybe()

	start, end := date(2024, 1, 1), date(2024, 1, 5)

	first, err := svc.Book(context.Background(), "t1", "u1", start, end)
	require.NoError(t, err)

	// same range is now taken
	_, err = svc.Book(context.Background(), "t1", "u2", start, end)
	require.ErrorIs(t, err, domain.ErrNotAvailable)

	require.NoError(t, svc.Cancel(context.Background(), first.ID, "u1"))

	// cancelling freed the range for a different borrower
	second, err := svc.Book(context.Background(), "t1", "u2", start, end)
	require.NoError(t, err)
	assert.Equal(t, "u2", second.BorrowerID)

	time.Sleep(50 * time.Millisecond)
}
