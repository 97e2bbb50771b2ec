package slot

import "errors"

var (
	// ErrSlotNotFound is returned when the slot does not exist
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
