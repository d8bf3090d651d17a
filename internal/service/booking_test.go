package service

import (
	"context"
	"testing"
	"time"

	"github.com/ndmitrv/seatbooker/internal/domain"
	"github.com/ndmitrv/seatbooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestBookingService_Reserve_Success(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	publisher := mocks.NewMockBookingPublisher(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, userRepo, notifier, publisher, log)

	user := &domain.User{ID: "u1", Email: "alice@example.com"}
	event := &domain.Event{ID: "e1", Title: "Concert", Capacity: 100, SeatsRemaining: 98}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	bookingRepo.EXPECT().Reserve(mock.Anything, mock.Anything).Return(nil)
	publisher.EXPECT().PublishBookingConfirmed(mock.Anything, mock.Anything).Return(nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, user, event, mock.Anything).Return()

	booking, err := svc.Reserve(context.Background(), "e1", "u1", 2)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, "e1", booking.EventID)
	assert.Equal(t, "u1", booking.UserID)
	assert.Equal(t, 2, booking.Seats)
	assert.NotEmpty(t, booking.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_ReserveAtomic_Success(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	publisher := mocks.NewMockBookingPublisher(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, userRepo, notifier, publisher, log)

	user := &domain.User{ID: "u1"}
	event := &domain.Event{ID: "e1", Capacity: 10, SeatsRemaining: 9}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	bookingRepo.EXPECT().ReserveAtomic(mock.Anything, mock.Anything).Return(nil)
	publisher.EXPECT().PublishBookingConfirmed(mock.Anything, mock.Anything).Return(nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, user, event, mock.Anything).Return()

	booking, err := svc.ReserveAtomic(context.Background(), "e1", "u1", 1)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Reserve_InvalidSeats(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	publisher := mocks.NewMockBookingPublisher(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, userRepo, notifier, publisher, log)

	_, err := svc.Reserve(context.Background(), "e1", "u1", 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Reserve_UserNotFound(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	publisher := mocks.NewMockBookingPublisher(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, userRepo, notifier, publisher, log)

	userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Reserve(context.Background(), "e1", "missing", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestBookingService_Reserve_NotEnoughSeats(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	publisher := mocks.NewMockBookingPublisher(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, userRepo, notifier, publisher, log)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	bookingRepo.EXPECT().Reserve(mock.Anything, mock.Anything).Return(domain.ErrNotEnoughSeats)

	_, err := svc.Reserve(context.Background(), "e1", "u1", 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotEnoughSeats)
}

func TestBookingService_ReserveAtomic_NotEnoughSeats(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	publisher := mocks.NewMockBookingPublisher(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, userRepo, notifier, publisher, log)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	bookingRepo.EXPECT().ReserveAtomic(mock.Anything, mock.Anything).Return(domain.ErrNotEnoughSeats)

	_, err := svc.ReserveAtomic(context.Background(), "e1", "u1", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotEnoughSeats)
}

func TestBookingService_Cancel_Success(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	publisher := mocks.NewMockBookingPublisher(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, userRepo, notifier, publisher, log)

	confirmed := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1", Seats: 2, Status: domain.BookingStatusConfirmed}
	canceled := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1", Seats: 2, Status: domain.BookingStatusCanceled}
	user := &domain.User{ID: "u1"}
	event := &domain.Event{ID: "e1", Title: "Concert"}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(confirmed, nil)
	bookingRepo.EXPECT().Cancel(mock.Anything, "b1").Return(canceled, nil)
	publisher.EXPECT().PublishBookingCanceled(mock.Anything, canceled).Return(nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	notifier.EXPECT().NotifyBookingCanceled(mock.Anything, user, event, canceled).Return()

	result, err := svc.Cancel(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCanceled, result.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Cancel_AlreadyCanceled(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	publisher := mocks.NewMockBookingPublisher(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, userRepo, notifier, publisher, log)

	canceled := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1", Seats: 1, Status: domain.BookingStatusCanceled}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(canceled, nil)

	// повторная отмена не трогает счётчик
	result, err := svc.Cancel(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCanceled, result.Status)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	publisher := mocks.NewMockBookingPublisher(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, userRepo, notifier, publisher, log)

	bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.Cancel(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_ListByUser_Success(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	publisher := mocks.NewMockBookingPublisher(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, userRepo, notifier, publisher, log)

	bookings := []*domain.Booking{
		{ID: "b1", EventID: "e1", UserID: "u1", Seats: 1, Status: domain.BookingStatusConfirmed},
	}
	bookingRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(bookings, nil)

	result, err := svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
