package domain

import "time"

type Event struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	Capacity       int       `json:"capacity"`
	SeatsRemaining int       `json:"seats_remaining"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateEventInput struct {
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Capacity    int
}

// EventUpdate enumerates the fields a partial update may change.
// A nil field is left untouched.
type EventUpdate struct {
	Title       *string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
	Capacity    *int
}

// AdjustSeats returns the seats_remaining value after a capacity change.
// The counter shifts by the capacity delta and never drops below zero.
func AdjustSeats(oldCapacity, newCapacity, seatsRemaining int) int {
	adjusted := seatsRemaining + (newCapacity - oldCapacity)
	if adjusted < 0 {
		return 0
	}
	return adjusted
}

// InventoryDrift describes an event whose seats_remaining no longer matches
// capacity minus the sum of confirmed booking seats.
type InventoryDrift struct {
	EventID        string
	Capacity       int
	SeatsRemaining int
	ConfirmedSeats int
}
