package ports

import (
	"context"

	"github.com/mauryatalluru/neartools/internal/domain"
)

type ReviewRepo interface {
	Create(ctx context.Context, r *domain.Review) error
	ListByTool(ctx context.Context, toolID string) ([]*domain.Review, error)
	StatsFor(ctx context.Context, toolIDs []string) (map[string]domain.RatingStats, error)
}
