package create_booking

import "time"

// Request is the booking creation input
type Request struct {
	UserID    int64
	VehicleID int64
	SlotID    string
	StartTime time.Time
	EndTime   time.Time
}

// Response is the persisted booking
type Response struct {
	ID        int64
	SlotID    string
	Floor     int
	UserID    int64
	VehicleID int64
	StartTime time.Time
	EndTime   time.Time
	Amount    float64
	CreatedAt time.Time
}
