package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mauryatalluru/neartools/internal/domain"
	"github.com/mauryatalluru/neartools/internal/service/ports"
)

type ReviewService struct {
	reviewRepo  ports.ReviewRepo
	toolRepo    ports.ToolRepo
	bookingRepo ports.BookingRepo
}

func NewReviewService(reviewRepo ports.ReviewRepo, toolRepo ports.ToolRepo, bookingRepo ports.BookingRepo) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		toolRepo:    toolRepo,
		bookingRepo: bookingRepo,
	}
}

// Add appends a review. Only borrowers whose booking of the tool has
// ended may review it; reviews are never edited or removed afterwards.
func (s *ReviewService) Add(ctx context.Context, input domain.AddReviewInput) (*domain.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}

	if _, err := s.toolRepo.GetByID(ctx, input.ToolID); err != nil {
		return nil, fmt.Errorf("check tool: %w", err)
	}

	eligible, err := s.bookingRepo.HasEndedBooking(ctx, input.ToolID, input.ReviewerID, domain.Today())
	if err != nil {
		return nil, fmt.Errorf("check eligibility: %w", err)
	}
	if !eligible {
		return nil, domain.ErrReviewNotAllowed
	}

	review := &domain.Review{
		ID:         uuid.New().String(),
		ToolID:     input.ToolID,
		ReviewerID: input.ReviewerID,
		Rating:     input.Rating,
		Comment:    input.Comment,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	return review, nil
}

func (s *ReviewService) ListByTool(ctx context.Context, toolID string) ([]*domain.Review, error) {
	return s.reviewRepo.ListByTool(ctx, toolID)
}
