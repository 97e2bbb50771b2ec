package userservice

import "errors"

var (
	// ErrVehicleNotFound is returned when the vehicle is not registered
	ErrVehicleNotFound = errors.New("userservice client: vehicle not found")

	// ErrUserNotFound is returned when the user is not registered
	ErrUserNotFound = errors.New("userservice client: user not found")

	// ErrInternal is returned on client-side failures
	ErrInternal = errors.New("userservice client: internal error")

	// ErrInvalidResponse is returned when the directory answers with an
	// unexpected payload or status
	ErrInvalidResponse = errors.New("userservice client: invalid response")
)
