package domain

import "time"

// Booking represents a reservation of one parking slot over a half-open
// time interval [StartTime, EndTime)
type Booking struct {
	ID        int64
	SlotID    string
	UserID    int64
	VehicleID int64
	StartTime time.Time
	EndTime   time.Time
	Amount    float64

	// ReceiptRef is the receipt artifact token attached on payment
	// confirmation, nil until the booking is paid
	ReceiptRef *string

	CreatedAt time.Time
}

// IsActiveAt returns true if the booking covers the given instant.
// EndTime is exclusive: a booking is no longer active at its own end.
func (b *Booking) IsActiveAt(now time.Time) bool {
	return !b.StartTime.After(now) && now.Before(b.EndTime)
}

// IsFutureAt returns true if the booking starts strictly after the given instant
func (b *Booking) IsFutureAt(now time.Time) bool {
	return b.StartTime.After(now)
}

// IsHistoricalAt returns true if the booking has fully elapsed
func (b *Booking) IsHistoricalAt(now time.Time) bool {
	return !now.Before(b.EndTime)
}

// Overlaps reports whether the booking intersects the candidate interval
// [start, end) under half-open semantics. Touching endpoints (one booking
// ending exactly where another starts) do not overlap.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && b.EndTime.After(start)
}

// IsPaid returns true if a receipt artifact has been attached
func (b *Booking) IsPaid() bool {
	return b.ReceiptRef != nil
}
