package ports

import (
	"context"
	"time"

	"github.com/mauryatalluru/neartools/internal/domain"
)

type ToolRepo interface {
	Create(ctx context.Context, t *domain.Tool) error
	GetByID(ctx context.Context, id string) (*domain.Tool, error)
	List(ctx context.Context, f domain.ToolFilter) ([]*domain.Tool, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Tool, error)
	// Delete removes a listing, failing if the caller is not the owner or
	// a confirmed booking ends on or after today. The check and the delete
	// are one atomic unit with respect to concurrent bookings.
	Delete(ctx context.Context, toolID, ownerID string, today time.Time) error
}
