package dto

import (
	"time"

	"github.com/ndmitrv/seatbooker/internal/domain"
)

type EventResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Capacity       int    `json:"capacity"`
	SeatsRemaining int    `json:"seats_remaining"`
	CreatedAt      string `json:"created_at"`
}

type EventListResponse struct {
	Items []EventResponse `json:"items"`
	Total int             `json:"total"`
}

type BookingResponse struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	UserID    string `json:"user_id"`
	Seats     int    `json:"seats"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		StartTime:      e.StartTime.Format(time.RFC3339),
		EndTime:        e.EndTime.Format(time.RFC3339),
		Capacity:       e.Capacity,
		SeatsRemaining: e.SeatsRemaining,
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		EventID:   b.EventID,
		UserID:    b.UserID,
		Seats:     b.Seats,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
