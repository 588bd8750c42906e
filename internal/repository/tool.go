package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mauryatalluru/neartools/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ToolRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewToolRepo(db *dbpg.DB) *ToolRepository {
	return &ToolRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const toolColumns = `id, owner_id, name, description, category, daily_price,
					 location, available_from, available_to, created_at`

func (r *ToolRepository) Create(ctx context.Context, t *domain.Tool) error {
	query := `INSERT INTO tools (id, owner_id, name, description, category, daily_price, location, available_from, available_to, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		t.ID, t.OwnerID, t.Name, t.Description, t.Category,
		t.DailyPrice, t.Location, t.AvailableFrom, t.AvailableTo, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tool: %w", err)
	}

	return nil
}

func (r *ToolRepository) GetByID(ctx context.Context, id string) (*domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get tool: %w", err)
	}

	t, err := scanTool(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrToolNotFound
		}
		return nil, fmt.Errorf("scan tool: %w", err)
	}

	return t, nil
}

// List filters with case-insensitive substring matches; the keyword looks
// at the name only, like the browse box always has. Newest listings first.
func (r *ToolRepository) List(ctx context.Context, f domain.ToolFilter) ([]*domain.Tool, error) {
	query := `SELECT ` + toolColumns + `
			  FROM tools
			  WHERE lower(name) LIKE $1
				AND lower(category) LIKE $2
				AND lower(location) LIKE $3
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		pattern(f.Keyword), pattern(f.Category), pattern(f.Location),
	)
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	defer rows.Close()

	return collectTools(rows)
}

func (r *ToolRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Tool, error) {
	query := `SELECT ` + toolColumns + `
			  FROM tools
			  WHERE owner_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tools by owner: %w", err)
	}
	defer rows.Close()

	return collectTools(rows)
}

// Delete locks the tool row first, so it serializes against in-flight
// bookings of the same tool: no listing disappears under a booking that
// already passed its availability check.
func (r *ToolRepository) Delete(ctx context.Context, toolID, ownerID string, today time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var dbOwner string
	lockQuery := `SELECT owner_id FROM tools WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, toolID).Scan(&dbOwner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrToolNotFound
		}
		return fmt.Errorf("lock tool: %w", err)
	}

	if dbOwner != ownerID {
		return domain.ErrNotOwnedByCaller
	}

	var hasFuture bool
	guardQuery := `SELECT EXISTS(
					 SELECT 1 FROM bookings
					 WHERE tool_id = $1 AND status = $2 AND end_date >= $3
				   )`
	if err = tx.QueryRowContext(ctx, guardQuery, toolID, domain.BookingStatusConfirmed, today).
		Scan(&hasFuture); err != nil {
		return fmt.Errorf("check future bookings: %w", err)
	}
	if hasFuture {
		return domain.ErrHasFutureBookings
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM tools WHERE id = $1`, toolID); err != nil {
		return fmt.Errorf("delete tool: %w", err)
	}

	return tx.Commit()
}

func pattern(s string) string {
	return "%" + strings.ToLower(strings.TrimSpace(s)) + "%"
}

func scanTool(scan func(dest ...any) error) (*domain.Tool, error) {
	var t domain.Tool
	var from, to sql.NullTime
	if err := scan(
		&t.ID, &t.OwnerID, &t.Name, &t.Description, &t.Category,
		&t.DailyPrice, &t.Location, &from, &to, &t.CreatedAt,
	); err != nil {
		return nil, err
	}
	if from.Valid {
		t.AvailableFrom = &from.Time
	}
	if to.Valid {
		t.AvailableTo = &to.Time
	}
	return &t, nil
}

func collectTools(rows *sql.Rows) ([]*domain.Tool, error) {
	var res []*domain.Tool
	for rows.Next() {
		t, err := scanTool(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan tool: %w", err)
		}
		res = append(res, t)
	}

	return res, rows.Err()
}
