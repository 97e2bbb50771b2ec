package extend_booking

import "fmt"

func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.Units <= 0 {
		return fmt.Errorf("%w: units must be positive", ErrInvalidInput)
	}

	return nil
}
