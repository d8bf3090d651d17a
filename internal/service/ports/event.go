package ports

import (
	"context"

	"github.com/ndmitrv/seatbooker/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, page, size int) ([]*domain.Event, int, error)
	Update(ctx context.Context, id string, upd domain.EventUpdate) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
}
