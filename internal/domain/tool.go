package domain

import (
	"strings"
	"time"
)

type Tool struct {
	ID            string     `json:"id"`
	OwnerID       string     `json:"owner_id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	DailyPrice    float64    `json:"daily_price"`
	Location      string     `json:"location"`
	AvailableFrom *time.Time `json:"available_from,omitempty"`
	AvailableTo   *time.Time `json:"available_to,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// SearchText is the haystack the matcher tokenizes for this listing.
func (t *Tool) SearchText() string {
	return strings.Join([]string{t.Name, t.Description, t.Category}, " ")
}

type RatingStats struct {
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

type ToolDetails struct {
	Tool      Tool        `json:"tool"`
	Rating    RatingStats `json:"rating"`
	BookedFor []DateRange `json:"booked_for"`
}

type CreateToolInput struct {
	OwnerID       string
	Name          string
	Description   string
	Category      string
	DailyPrice    float64
	Location      string
	AvailableFrom *time.Time
	AvailableTo   *time.Time
}

// ToolFilter narrows listings with case-insensitive substring matches.
// Empty fields match everything.
type ToolFilter struct {
	Keyword  string
	Category string
	Location string
}

// SearchQuery describes a ranked search. Keyword, category and location
// are hard substring filters; Text only influences ranking. Start and
// End are either both set or both nil.
type SearchQuery struct {
	Text     string
	Keyword  string
	Category string
	Location string
	Start    *time.Time
	End      *time.Time
}
