package dto

import (
	"time"

	"github.com/mauryatalluru/neartools/internal/domain"
	"github.com/mauryatalluru/neartools/internal/rank"
)

// DateLayout is how calendar dates travel over the API.
const DateLayout = "2006-01-02"

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Location  string `json:"location,omitempty"`
	CreatedAt string `json:"created_at"`
}

type ToolResponse struct {
	ID            string  `json:"id"`
	OwnerID       string  `json:"owner_id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Category      string  `json:"category,omitempty"`
	DailyPrice    float64 `json:"daily_price"`
	Location      string  `json:"location"`
	AvailableFrom string  `json:"available_from,omitempty"`
	AvailableTo   string  `json:"available_to,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

type DateRangeResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type ToolDetailsResponse struct {
	Tool        ToolResponse        `json:"tool"`
	MeanRating  float64             `json:"mean_rating"`
	ReviewCount int                 `json:"review_count"`
	BookedFor   []DateRangeResponse `json:"booked_for"`
}

type BookingResponse struct {
	ID         string  `json:"id"`
	ToolID     string  `json:"tool_id"`
	BorrowerID string  `json:"borrower_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	TotalCost  float64 `json:"total_cost"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"`
}

type BorrowerBookingResponse struct {
	BookingResponse
	ToolName string `json:"tool_name"`
}

type ReviewResponse struct {
	ID         string `json:"id"`
	ToolID     string `json:"tool_id"`
	ReviewerID string `json:"reviewer_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type RankedToolResponse struct {
	Tool    ToolResponse `json:"tool"`
	Score   float64      `json:"score"`
	Reasons []string     `json:"reasons"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Location:  u.Location,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToToolResponse(t *domain.Tool) ToolResponse {
	resp := ToolResponse{
		ID:          t.ID,
		OwnerID:     t.OwnerID,
		Name:        t.Name,
		Description: t.Description,
		Category:    t.Category,
		DailyPrice:  t.DailyPrice,
		Location:    t.Location,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
	if t.AvailableFrom != nil {
		resp.AvailableFrom = t.AvailableFrom.Format(DateLayout)
	}
	if t.AvailableTo != nil {
		resp.AvailableTo = t.AvailableTo.Format(DateLayout)
	}
	return resp
}

func ToToolDetailsResponse(d *domain.ToolDetails) ToolDetailsResponse {
	booked := make([]DateRangeResponse, 0, len(d.BookedFor))
	for _, r := range d.BookedFor {
		booked = append(booked, DateRangeResponse{
			Start: r.Start.Format(DateLayout),
			End:   r.End.Format(DateLayout),
		})
	}

	return ToolDetailsResponse{
		Tool:        ToToolResponse(&d.Tool),
		MeanRating:  d.Rating.Mean,
		ReviewCount: d.Rating.Count,
		BookedFor:   booked,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		ToolID:     b.ToolID,
		BorrowerID: b.BorrowerID,
		StartDate:  b.StartDate.Format(DateLayout),
		EndDate:    b.EndDate.Format(DateLayout),
		TotalCost:  b.TotalCost,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
	}
}

func ToBorrowerBookingResponse(b *domain.BorrowerBooking) BorrowerBookingResponse {
	return BorrowerBookingResponse{
		BookingResponse: ToBookingResponse(&b.Booking),
		ToolName:        b.ToolName,
	}
}

func ToReviewResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		ToolID:     r.ToolID,
		ReviewerID: r.ReviewerID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
}

func ToRankedToolResponse(r rank.Result) RankedToolResponse {
	return RankedToolResponse{
		Tool:    ToToolResponse(r.Tool),
		Score:   r.Score,
		Reasons: r.Reasons,
	}
}
