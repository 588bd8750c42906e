package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/mauryatalluru/neartools/internal/availability"
	"github.com/mauryatalluru/neartools/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create runs the availability check and the insert in one transaction.
// Locking the tool row FOR UPDATE serializes bookings per tool, so two
// concurrent callers can never both observe "available" for overlapping
// ranges. The bookings_no_overlap exclusion constraint backstops the
// invariant at the storage level.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT available_from, available_to FROM tools WHERE id = $1 FOR UPDATE`
	var from, to sql.NullTime
	if err = tx.QueryRowContext(ctx, lockQuery, b.ToolID).Scan(&from, &to); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrToolNotFound
		}
		return fmt.Errorf("lock tool: %w", err)
	}

	var tool domain.Tool
	if from.Valid {
		tool.AvailableFrom = &from.Time
	}
	if to.Valid {
		tool.AvailableTo = &to.Time
	}

	rangeQuery := `SELECT start_date, end_date FROM bookings
				   WHERE tool_id = $1 AND status = $2`
	rows, err := tx.QueryContext(ctx, rangeQuery, b.ToolID, domain.BookingStatusConfirmed)
	if err != nil {
		return fmt.Errorf("load confirmed ranges: %w", err)
	}

	var confirmed []domain.DateRange
	for rows.Next() {
		var dr domain.DateRange
		if err = rows.Scan(&dr.Start, &dr.End); err != nil {
			rows.Close()
			return fmt.Errorf("scan range: %w", err)
		}
		confirmed = append(confirmed, dr)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("read ranges: %w", err)
	}
	rows.Close()

	if !availability.IsAvailable(&tool, confirmed, b.StartDate, b.EndDate) {
		return domain.ErrNotAvailable
	}

	query := `INSERT INTO bookings (id, tool_id, borrower_id, start_date, end_date, total_cost, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = tx.ExecContext(
		ctx, query, b.ID, b.ToolID, b.BorrowerID,
		b.StartDate, b.EndDate, b.TotalCost, b.Status, b.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23P01" {
			return domain.ErrNotAvailable
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

// Cancel transitions confirmed -> cancelled. The row lock makes a double
// cancel deterministic: the loser sees the new status and gets
// ErrBookingNotConfirmed.
func (r *BookingRepository) Cancel(ctx context.Context, bookingID, borrowerID string) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `SELECT id, tool_id, borrower_id, start_date, end_date, total_cost, status, created_at
			  FROM bookings
			  WHERE id = $1
			  FOR UPDATE`

	var b domain.Booking
	if err = tx.QueryRowContext(ctx, query, bookingID).Scan(
		&b.ID, &b.ToolID, &b.BorrowerID, &b.StartDate, &b.EndDate,
		&b.TotalCost, &b.Status, &b.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if b.BorrowerID != borrowerID {
		return nil, domain.ErrNotOwnedByCaller
	}
	if b.Status != domain.BookingStatusConfirmed {
		return nil, domain.ErrBookingNotConfirmed
	}

	update := `UPDATE bookings SET status = $2 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, update, bookingID, domain.BookingStatusCancelled); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	b.Status = domain.BookingStatusCancelled
	return &b, nil
}

func (r *BookingRepository) ListByBorrower(ctx context.Context, borrowerID string) ([]*domain.BorrowerBooking, error) {
	query := `SELECT b.id, b.tool_id, b.borrower_id, b.start_date, b.end_date,
					 b.total_cost, b.status, b.created_at, t.name
			  FROM bookings b
			  JOIN tools t ON t.id = b.tool_id
			  WHERE b.borrower_id = $1
			  ORDER BY b.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, borrowerID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by borrower: %w", err)
	}
	defer rows.Close()

	var res []*domain.BorrowerBooking
	for rows.Next() {
		var b domain.BorrowerBooking
		if err = rows.Scan(
			&b.ID, &b.ToolID, &b.BorrowerID, &b.StartDate, &b.EndDate,
			&b.TotalCost, &b.Status, &b.CreatedAt, &b.ToolName,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) ConfirmedRangesFor(ctx context.Context, toolIDs []string) (map[string][]domain.DateRange, error) {
	query := `SELECT tool_id, start_date, end_date FROM bookings
			  WHERE tool_id = ANY($1) AND status = $2`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(toolIDs), domain.BookingStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("confirmed ranges: %w", err)
	}
	defer rows.Close()

	res := make(map[string][]domain.DateRange)
	for rows.Next() {
		var toolID string
		var dr domain.DateRange
		if err = rows.Scan(&toolID, &dr.Start, &dr.End); err != nil {
			return nil, fmt.Errorf("scan range: %w", err)
		}
		res[toolID] = append(res[toolID], dr)
	}

	return res, rows.Err()
}

// RecentCounts counts bookings of any status created since the cutoff;
// a cancelled booking still signals demand.
func (r *BookingRepository) RecentCounts(ctx context.Context, toolIDs []string, since time.Time) (map[string]int, error) {
	query := `SELECT tool_id, COUNT(*) FROM bookings
			  WHERE tool_id = ANY($1) AND created_at >= $2
			  GROUP BY tool_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(toolIDs), since)
	if err != nil {
		return nil, fmt.Errorf("recent counts: %w", err)
	}
	defer rows.Close()

	res := make(map[string]int)
	for rows.Next() {
		var toolID string
		var count int
		if err = rows.Scan(&toolID, &count); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		res[toolID] = count
	}

	return res, rows.Err()
}

func (r *BookingRepository) HasEndedBooking(ctx context.Context, toolID, borrowerID string, today time.Time) (bool, error) {
	query := `SELECT EXISTS(
				SELECT 1 FROM bookings
				WHERE tool_id = $1 AND borrower_id = $2 AND status = $3 AND end_date <= $4
			  )`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, toolID, borrowerID, domain.BookingStatusConfirmed, today)
	if err != nil {
		return false, fmt.Errorf("check ended booking: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan exists: %w", err)
	}

	return exists, nil
}

func (r *BookingRepository) MarkReturnsDue(ctx context.Context, today time.Time) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET reminder_sent = TRUE
			  WHERE status = $1 AND end_date <= $2 AND reminder_sent = FALSE
			  RETURNING id, tool_id, borrower_id, start_date, end_date,
						total_cost, status, created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.BookingStatusConfirmed, today)
	if err != nil {
		return nil, fmt.Errorf("mark returns due: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(
			&b.ID, &b.ToolID, &b.BorrowerID, &b.StartDate, &b.EndDate,
			&b.TotalCost, &b.Status, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}
