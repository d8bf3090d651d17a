package ports

import (
	"context"

	"github.com/ndmitrv/seatbooker/internal/domain"
)

// BookingPublisher pushes booking lifecycle events to the message broker.
// Publish failures must not fail the originating request.
type BookingPublisher interface {
	PublishBookingConfirmed(ctx context.Context, b *domain.Booking) error
	PublishBookingCanceled(ctx context.Context, b *domain.Booking) error
}
