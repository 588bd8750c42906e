// Package availability decides whether a tool is free for a date range.
// It is pure: callers supply the tool and its confirmed bookings, nothing
// is read or written here.
package availability

import (
	"time"

	"github.com/mauryatalluru/neartools/internal/domain"
)

// IsAvailable reports whether [start, end] fits inside the tool's
// availability window and touches none of the confirmed bookings.
// Both bounds are inclusive calendar days; a booking ending the day
// before another starts does not conflict. The caller must guarantee
// start <= end.
func IsAvailable(t *domain.Tool, confirmed []domain.DateRange, start, end time.Time) bool {
	if t.AvailableFrom != nil && start.Before(*t.AvailableFrom) {
		return false
	}
	if t.AvailableTo != nil && end.After(*t.AvailableTo) {
		return false
	}

	want := domain.DateRange{Start: start, End: end}
	for _, b := range confirmed {
		if want.Overlaps(b) {
			return false
		}
	}

	return true
}
