package domain

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	// ErrNotEnoughSeats is the expected rejection under contention. The atomic
	// reservation path also returns it for a missing event: a conditional
	// UPDATE that touches zero rows cannot tell the two apart.
	ErrNotEnoughSeats = errors.New("not enough seats available")
)

var (
	ErrEmailTaken = errors.New("email is already registered")
)

var (
	ErrValidation = errors.New("validation error")
)
