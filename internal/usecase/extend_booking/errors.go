package extend_booking

import "errors"

var (
	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("extend_booking: invalid input data")

	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("extend_booking: booking not found")

	// ErrBookingNotOwned is returned when the booking belongs to another user
	ErrBookingNotOwned = errors.New("extend_booking: booking does not belong to the user")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("extend_booking: internal error")
)
