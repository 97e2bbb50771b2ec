package create_booking

import "fmt"

// validateRequest rejects malformed input before any store access
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.VehicleID <= 0 {
		return fmt.Errorf("%w: vehicleID must be positive", ErrInvalidInput)
	}

	if req.SlotID == "" {
		return fmt.Errorf("%w: slotID is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if !req.EndTime.After(req.StartTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	return nil
}
