package ports

import (
	"context"

	"github.com/ndmitrv/seatbooker/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, user *domain.User, event *domain.Event, booking *domain.Booking)
	NotifyBookingCanceled(ctx context.Context, user *domain.User, event *domain.Event, booking *domain.Booking)
}
