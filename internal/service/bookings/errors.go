package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied is returned when the viewer does not own the booking
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
