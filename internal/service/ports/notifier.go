package ports

import (
	"context"

	"github.com/mauryatalluru/neartools/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, user *domain.User, tool *domain.Tool, b *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, user *domain.User, tool *domain.Tool, b *domain.Booking)
	NotifyReturnDue(ctx context.Context, user *domain.User, tool *domain.Tool, b *domain.Booking)
}
