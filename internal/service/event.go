package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ndmitrv/seatbooker/internal/domain"
	"github.com/ndmitrv/seatbooker/internal/service/ports"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type EventService struct {
	repo        ports.EventRepo
	bookingRepo ports.BookingRepo
}

func NewEventService(repo ports.EventRepo, bookingRepo ports.BookingRepo) *EventService {
	return &EventService{
		repo:        repo,
		bookingRepo: bookingRepo,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if input.EndTime.Before(input.StartTime) {
		return nil, fmt.Errorf("%w: end_time must not precede start_time", domain.ErrValidation)
	}

	event := &domain.Event{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Capacity:    input.Capacity,
		// a new event starts fully unreserved
		SeatsRemaining: input.Capacity,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context, page, size int) ([]*domain.Event, int, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	return s.repo.List(ctx, page, size)
}

func (s *EventService) Update(ctx context.Context, id string, upd domain.EventUpdate) (*domain.Event, error) {
	if upd.Capacity != nil && *upd.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if upd.Title != nil && *upd.Title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", domain.ErrValidation)
	}

	return s.repo.Update(ctx, id, upd)
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *EventService) ListBookings(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	if _, err := s.repo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	return s.bookingRepo.ListByEvent(ctx, eventID)
}
