package finalize_booking

import "errors"

var (
	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("finalize_booking: invalid input data")

	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("finalize_booking: booking not found")

	// ErrBookingNotOwned is returned when the booking belongs to another user
	ErrBookingNotOwned = errors.New("finalize_booking: booking does not belong to the user")

	// ErrAlreadyFinalized is returned when the booking already carries a
	// receipt
	ErrAlreadyFinalized = errors.New("finalize_booking: booking already finalized")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("finalize_booking: internal error")
)
