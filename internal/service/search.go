package service

import (
	"context"
	"fmt"

	"github.com/mauryatalluru/neartools/internal/domain"
	"github.com/mauryatalluru/neartools/internal/rank"
	"github.com/mauryatalluru/neartools/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type SearchService struct {
	toolRepo    ports.ToolRepo
	bookingRepo ports.BookingRepo
	reviewRepo  ports.ReviewRepo
	demandDays  int
	logger      logger.Logger
}

func NewSearchService(
	toolRepo ports.ToolRepo,
	bookingRepo ports.BookingRepo,
	reviewRepo ports.ReviewRepo,
	demandDays int,
	logger logger.Logger,
) *SearchService {
	return &SearchService{
		toolRepo:    toolRepo,
		bookingRepo: bookingRepo,
		reviewRepo:  reviewRepo,
		demandDays:  demandDays,
		logger:      logger,
	}
}

// Search lists matching tools and ranks them against the query and the
// current booking/review snapshot. Read-only: it sees the last committed
// state and never observes in-flight bookings.
func (s *SearchService) Search(ctx context.Context, input domain.SearchQuery) ([]rank.Result, error) {
	if input.Start != nil && input.End != nil && input.End.Before(*input.Start) {
		return nil, domain.ErrInvalidDateRange
	}

	tools, err := s.toolRepo.List(ctx, domain.ToolFilter{
		Keyword:  input.Keyword,
		Category: input.Category,
		Location: input.Location,
	})
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	if len(tools) == 0 {
		return []rank.Result{}, nil
	}

	ids := make([]string, len(tools))
	for i, t := range tools {
		ids[i] = t.ID
	}

	signals := make(map[string]rank.Signals, len(tools))

	if input.Start != nil && input.End != nil {
		ranges, err := s.bookingRepo.ConfirmedRangesFor(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("confirmed ranges: %w", err)
		}
		for id, rs := range ranges {
			sig := signals[id]
			sig.Confirmed = rs
			signals[id] = sig
		}
	}

	stats, err := s.reviewRepo.StatsFor(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("rating stats: %w", err)
	}
	for id, st := range stats {
		sig := signals[id]
		sig.MeanRating = st.Mean
		sig.ReviewCount = st.Count
		signals[id] = sig
	}

	since := domain.Today().AddDate(0, 0, -s.demandDays)
	recent, err := s.bookingRepo.RecentCounts(ctx, ids, since)
	if err != nil {
		return nil, fmt.Errorf("recent counts: %w", err)
	}
	for id, n := range recent {
		sig := signals[id]
		sig.RecentBookings = n
		signals[id] = sig
	}

	results := rank.Rank(tools, input.Text, input.Start, input.End, signals)

	s.logger.Debug("search ranked",
		logger.Int("candidates", len(tools)),
		logger.String("query", input.Text),
	)

	return results, nil
}
