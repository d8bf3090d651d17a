package ports

import (
	"context"

	"github.com/ndmitrv/seatbooker/internal/domain"
)

type BookingRepo interface {
	// Reserve commits the booking with the pessimistic (row-lock) strategy.
	Reserve(ctx context.Context, b *domain.Booking) error
	// ReserveAtomic commits the booking with a single conditional decrement.
	ReserveAtomic(ctx context.Context, b *domain.Booking) error
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error)
}
