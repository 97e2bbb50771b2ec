package get_floor_status

import "errors"

var (
	// ErrFloorNotFound is returned for a floor outside the facility
	ErrFloorNotFound = errors.New("get_floor_status: floor not found")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("get_floor_status: internal error")
)
