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
)

func TestEventService_CreateEvent_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)

	svc := NewEventService(repo, bookingRepo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	start := time.Now().Add(24 * time.Hour)
	event, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		Title:     "Concert",
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Capacity:  50,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, 50, event.Capacity)
	assert.Equal(t, 50, event.SeatsRemaining)
}

func TestEventService_CreateEvent_InvalidCapacity(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)

	svc := NewEventService(repo, bookingRepo)

	_, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		Title:    "Concert",
		Capacity: 0,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_CreateEvent_EmptyTitle(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)

	svc := NewEventService(repo, bookingRepo)

	_, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		Capacity: 10,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_CreateEvent_EndBeforeStart(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)

	svc := NewEventService(repo, bookingRepo)

	start := time.Now().Add(24 * time.Hour)
	_, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		Title:     "Concert",
		StartTime: start,
		EndTime:   start.Add(-time.Hour),
		Capacity:  10,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_List_ClampsPaging(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)

	svc := NewEventService(repo, bookingRepo)

	repo.EXPECT().List(mock.Anything, 1, defaultPageSize).Return(nil, 0, nil)

	_, total, err := svc.List(context.Background(), 0, -5)

	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestEventService_List_CapsPageSize(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)

	svc := NewEventService(repo, bookingRepo)

	repo.EXPECT().List(mock.Anything, 2, maxPageSize).Return(nil, 0, nil)

	_, _, err := svc.List(context.Background(), 2, 1000)

	require.NoError(t, err)
}

func TestEventService_Update_InvalidCapacity(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)

	svc := NewEventService(repo, bookingRepo)

	capacity := -1
	_, err := svc.Update(context.Background(), "e1", domain.EventUpdate{Capacity: &capacity})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Update_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)

	svc := NewEventService(repo, bookingRepo)

	capacity := 120
	updated := &domain.Event{ID: "e1", Title: "Concert", Capacity: 120, SeatsRemaining: 70}

	repo.EXPECT().Update(mock.Anything, "e1", mock.Anything).Return(updated, nil)

	event, err := svc.Update(context.Background(), "e1", domain.EventUpdate{Capacity: &capacity})

	require.NoError(t, err)
	assert.Equal(t, 120, event.Capacity)
}

func TestEventService_Delete_NotFound(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)

	svc := NewEventService(repo, bookingRepo)

	repo.EXPECT().Delete(mock.Anything, "missing").Return(domain.ErrEventNotFound)

	err := svc.Delete(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_ListBookings_EventNotFound(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)

	svc := NewEventService(repo, bookingRepo)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.ListBookings(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_ListBookings_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)

	svc := NewEventService(repo, bookingRepo)

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	bookingRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return([]*domain.Booking{
		{ID: "b1", EventID: "e1", UserID: "u1", Seats: 1, Status: domain.BookingStatusConfirmed},
	}, nil)

	bookings, err := svc.ListBookings(context.Background(), "e1")

	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}
