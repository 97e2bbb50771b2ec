package create_booking

import "errors"

var (
	// ErrSlotConflict is returned when the requested interval overlaps an
	// existing booking on the slot
	ErrSlotConflict = errors.New("create_booking: slot already booked for the selected time")

	// ErrSlotNotFound is returned when the slot does not exist
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrVehicleNotFound is returned when the vehicle is not registered
	ErrVehicleNotFound = errors.New("create_booking: vehicle not found")

	// ErrVehicleNotOwned is returned when the vehicle belongs to another user
	ErrVehicleNotOwned = errors.New("create_booking: vehicle does not belong to the user")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("create_booking: internal error")
)
