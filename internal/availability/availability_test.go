package availability

import (
	"testing"
	"time"

	"github.com/mauryatalluru/neartools/internal/domain"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsAvailable_NoBookingsNoWindow(t *testing.T) {
	tool := &domain.Tool{ID: "t1"}

	assert.True(t, IsAvailable(tool, nil, day(2024, 3, 1), day(2024, 3, 5)))
}

func TestIsAvailable_Window(t *testing.T) {
	from := day(2024, 3, 1)
	to := day(2024, 3, 31)
	tool := &domain.Tool{ID: "t1", AvailableFrom: &from, AvailableTo: &to}

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"inside window", day(2024, 3, 10), day(2024, 3, 12), true},
		{"exactly the window", day(2024, 3, 1), day(2024, 3, 31), true},
		{"starts before window", day(2024, 2, 28), day(2024, 3, 2), false},
		{"ends after window", day(2024, 3, 30), day(2024, 4, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAvailable(tool, nil, tt.start, tt.end))
		})
	}
}

func TestIsAvailable_BoundaryAdjacency(t *testing.T) {
	tool := &domain.Tool{ID: "t1"}
	confirmed := []domain.DateRange{
		{Start: day(2024, 3, 1), End: day(2024, 3, 5)},
	}

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"week before", day(2024, 2, 24), day(2024, 2, 28), true},
		{"week after", day(2024, 3, 6), day(2024, 3, 10), true},
		{"single day inside", day(2024, 3, 5), day(2024, 3, 5), false},
		{"touches first day", day(2024, 2, 28), day(2024, 3, 1), false},
		{"touches last day", day(2024, 3, 5), day(2024, 3, 8), false},
		{"spans the whole booking", day(2024, 2, 20), day(2024, 3, 10), false},
		{"identical range", day(2024, 3, 1), day(2024, 3, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAvailable(tool, confirmed, tt.start, tt.end))
		})
	}
}

func TestIsAvailable_MultipleBookings(t *testing.T) {
	tool := &domain.Tool{ID: "t1"}
	confirmed := []domain.DateRange{
		{Start: day(2024, 3, 1), End: day(2024, 3, 5)},
		{Start: day(2024, 3, 10), End: day(2024, 3, 12)},
	}

	// the gap between bookings is free
	assert.True(t, IsAvailable(tool, confirmed, day(2024, 3, 6), day(2024, 3, 9)))
	// a range bridging the gap hits the second booking
	assert.False(t, IsAvailable(tool, confirmed, day(2024, 3, 6), day(2024, 3, 10)))
}

func TestIsAvailable_Pure(t *testing.T) {
	tool := &domain.Tool{ID: "t1"}
	confirmed := []domain.DateRange{
		{Start: day(2024, 3, 1), End: day(2024, 3, 5)},
	}

	for i := 0; i < 3; i++ {
		assert.False(t, IsAvailable(tool, confirmed, day(2024, 3, 3), day(2024, 3, 4)))
	}
	assert.Equal(t, day(2024, 3, 1), confirmed[0].Start)
}
