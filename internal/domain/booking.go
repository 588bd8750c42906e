package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking dates are calendar days: time.Time values pinned to UTC midnight,
// stored as DATE columns. Ranges are inclusive on both ends.
type Booking struct {
	ID         string        `json:"id"`
	ToolID     string        `json:"tool_id"`
	BorrowerID string        `json:"borrower_id"`
	StartDate  time.Time     `json:"start_date"`
	EndDate    time.Time     `json:"end_date"`
	TotalCost  float64       `json:"total_cost"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
}

// BorrowerBooking is a booking joined with its tool's name for listings.
type BorrowerBooking struct {
	Booking
	ToolName string `json:"tool_name"`
}

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Overlaps reports whether the two inclusive ranges share at least one day.
func (r DateRange) Overlaps(o DateRange) bool {
	return !(r.End.Before(o.Start) || r.Start.After(o.End))
}

// DaysInclusive counts calendar days in [start, end], both ends included.
func DaysInclusive(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// Today is the current calendar day at UTC midnight.
func Today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}
