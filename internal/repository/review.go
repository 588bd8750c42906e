package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/mauryatalluru/neartools/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ReviewRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReviewRepo(db *dbpg.DB) *ReviewRepository {
	return &ReviewRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	query := `INSERT INTO reviews (id, tool_id, reviewer_id, rating, comment, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		rv.ID, rv.ToolID, rv.ReviewerID, rv.Rating, rv.Comment, rv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}

	return nil
}

func (r *ReviewRepository) ListByTool(ctx context.Context, toolID string) ([]*domain.Review, error) {
	query := `SELECT id, tool_id, reviewer_id, rating, comment, created_at
			  FROM reviews
			  WHERE tool_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, toolID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var res []*domain.Review
	for rows.Next() {
		var rv domain.Review
		if err = rows.Scan(&rv.ID, &rv.ToolID, &rv.ReviewerID, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		res = append(res, &rv)
	}

	return res, rows.Err()
}

// StatsFor returns mean rating and review count per tool. Tools without
// reviews are simply absent from the map; the zero RatingStats a caller
// gets on lookup keeps Count at 0, which is what distinguishes "no
// reviews" from "reviewed but low".
func (r *ReviewRepository) StatsFor(ctx context.Context, toolIDs []string) (map[string]domain.RatingStats, error) {
	query := `SELECT tool_id, AVG(rating)::float8, COUNT(*)
			  FROM reviews
			  WHERE tool_id = ANY($1)
			  GROUP BY tool_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(toolIDs))
	if err != nil {
		return nil, fmt.Errorf("rating stats: %w", err)
	}
	defer rows.Close()

	res := make(map[string]domain.RatingStats)
	for rows.Next() {
		var toolID string
		var stats domain.RatingStats
		if err = rows.Scan(&toolID, &stats.Mean, &stats.Count); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		res[toolID] = stats
	}

	return res, rows.Err()
}
