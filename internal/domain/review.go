package domain

import "time"

// Review is append-only: never updated or deleted once written.
type Review struct {
	ID         string    `json:"id"`
	ToolID     string    `json:"tool_id"`
	ReviewerID string    `json:"reviewer_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

type AddReviewInput struct {
	ToolID     string
	ReviewerID string
	Rating     int
	Comment    string
}
