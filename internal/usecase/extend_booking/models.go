package extend_booking

import "time"

// Request extends a booking by a whole number of half-hour units
type Request struct {
	UserID    int64
	BookingID int64
	Units     int
}

// Response is the booking after the extension
type Response struct {
	ID        int64
	SlotID    string
	StartTime time.Time
	EndTime   time.Time
	Amount    float64
}
