package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ndmitrv/seatbooker/internal/domain"
	"github.com/ndmitrv/seatbooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	eventRepo   ports.EventRepo
	userRepo    ports.UserRepo
	notifier    ports.BookingNotifier
	publisher   ports.BookingPublisher
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	publisher ports.BookingPublisher,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		publisher:   publisher,
		logger:      logger,
	}
}

// Reserve books seats using the pessimistic (row-lock) strategy.
func (s *BookingService) Reserve(ctx context.Context, eventID, userID string, seats int) (*domain.Booking, error) {
	return s.reserve(ctx, eventID, userID, seats, s.bookingRepo.Reserve, "locked")
}

// ReserveAtomic books seats using the single conditional decrement.
func (s *BookingService) ReserveAtomic(ctx context.Context, eventID, userID string, seats int) (*domain.Booking, error) {
	return s.reserve(ctx, eventID, userID, seats, s.bookingRepo.ReserveAtomic, "atomic")
}

func (s *BookingService) reserve(
	ctx context.Context,
	eventID, userID string,
	seats int,
	commit func(ctx context.Context, b *domain.Booking) error,
	strategy string,
) (*domain.Booking, error) {
	if seats < 1 {
		return nil, fmt.Errorf("%w: seats must be at least 1", domain.ErrValidation)
	}

	// проверка, что пользователь существует, до обращения к счётчику
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	booking := &domain.Booking{
		ID:        uuid.New().String(),
		EventID:   eventID,
		UserID:    userID,
		Seats:     seats,
		Status:    domain.BookingStatusConfirmed,
		CreatedAt: time.Now().UTC(),
	}
	if err = commit(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.Info("booking confirmed",
		logger.String("booking_id", booking.ID),
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
		logger.Int("seats", seats),
		logger.String("strategy", strategy),
	)

	go s.afterConfirm(context.WithoutCancel(ctx), user, booking)

	return booking, nil
}

// Cancel flips a confirmed booking to canceled and restores its seats.
// Cancelling an already canceled booking is a no-op, not an error.
func (s *BookingService) Cancel(ctx context.Context, bookingID string) (*domain.Booking, error) {
	current, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if current.Status == domain.BookingStatusCanceled {
		return current, nil
	}

	booking, err := s.bookingRepo.Cancel(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking canceled",
		logger.String("booking_id", booking.ID),
		logger.String("event_id", booking.EventID),
		logger.Int("seats", booking.Seats),
	)

	go s.afterCancel(context.WithoutCancel(ctx), booking)

	return booking, nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

func (s *BookingService) afterConfirm(ctx context.Context, user *domain.User, booking *domain.Booking) {
	if err := s.publisher.PublishBookingConfirmed(ctx, booking); err != nil {
		s.logger.Error("failed to publish booking confirmed",
			logger.String("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
	}

	event, err := s.eventRepo.GetByID(ctx, booking.EventID)
	if err != nil {
		s.logger.Error("failed to get event for notification",
			logger.String("event_id", booking.EventID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.notifier.NotifyBookingConfirmed(ctx, user, event, booking)
}

func (s *BookingService) afterCancel(ctx context.Context, booking *domain.Booking) {
	if err := s.publisher.PublishBookingCanceled(ctx, booking); err != nil {
		s.logger.Error("failed to publish booking canceled",
			logger.String("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
	}

	user, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		s.logger.Error("failed to get user for cancel notification",
			logger.String("user_id", booking.UserID),
		)
		return
	}

	event, err := s.eventRepo.GetByID(ctx, booking.EventID)
	if err != nil {
		s.logger.Error("failed to get event for cancel notification",
			logger.String("event_id", booking.EventID),
		)
		return
	}

	s.notifier.NotifyBookingCanceled(ctx, user, event, booking)
}
