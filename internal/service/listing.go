package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mauryatalluru/neartools/internal/domain"
	"github.com/mauryatalluru/neartools/internal/service/ports"
)

type ListingService struct {
	toolRepo    ports.ToolRepo
	bookingRepo ports.BookingRepo
	reviewRepo  ports.ReviewRepo
}

func NewListingService(toolRepo ports.ToolRepo, bookingRepo ports.BookingRepo, reviewRepo ports.ReviewRepo) *ListingService {
	return &ListingService{
		toolRepo:    toolRepo,
		bookingRepo: bookingRepo,
		reviewRepo:  reviewRepo,
	}
}

func (s *ListingService) CreateTool(ctx context.Context, input domain.CreateToolInput) (*domain.Tool, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Location == "" {
		return nil, fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	if input.DailyPrice <= 0 {
		return nil, fmt.Errorf("%w: daily_price must be positive", domain.ErrValidation)
	}
	if input.AvailableFrom != nil && input.AvailableTo != nil &&
		input.AvailableTo.Before(*input.AvailableFrom) {
		return nil, fmt.Errorf("%w: available_to is before available_from", domain.ErrValidation)
	}

	tool := &domain.Tool{
		ID:            uuid.New().String(),
		OwnerID:       input.OwnerID,
		Name:          input.Name,
		Description:   input.Description,
		Category:      input.Category,
		DailyPrice:    input.DailyPrice,
		Location:      input.Location,
		AvailableFrom: input.AvailableFrom,
		AvailableTo:   input.AvailableTo,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.toolRepo.Create(ctx, tool); err != nil {
		return nil, fmt.Errorf("create tool: %w", err)
	}

	return tool, nil
}

func (s *ListingService) GetDetails(ctx context.Context, id string) (*domain.ToolDetails, error) {
	tool, err := s.toolRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	stats, err := s.reviewRepo.StatsFor(ctx, []string{id})
	if err != nil {
		return nil, fmt.Errorf("rating stats: %w", err)
	}

	ranges, err := s.bookingRepo.ConfirmedRangesFor(ctx, []string{id})
	if err != nil {
		return nil, fmt.Errorf("confirmed ranges: %w", err)
	}

	return &domain.ToolDetails{
		Tool:      *tool,
		Rating:    stats[id],
		BookedFor: ranges[id],
	}, nil
}

func (s *ListingService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Tool, error) {
	return s.toolRepo.ListByOwner(ctx, ownerID)
}

// Delete removes a listing unless a confirmed booking still runs today
// or later. Historical bookings and reviews go with it.
func (s *ListingService) Delete(ctx context.Context, toolID, ownerID string) error {
	if err := s.toolRepo.Delete(ctx, toolID, ownerID, domain.Today()); err != nil {
		return fmt.Errorf("delete tool: %w", err)
	}
	return nil
}
