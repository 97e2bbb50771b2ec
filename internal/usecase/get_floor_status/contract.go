package get_floor_status

import (
	"context"
	"time"

	"github.com/Lingges29/mypark/internal/domain"
)

// SlotRepository is the slot registry surface the usecase needs
type SlotRepository interface {
	ListByFloor(ctx context.Context, floor int) ([]*domain.Slot, error)
}

// BookingRepository is the booking store surface the usecase needs
type BookingRepository interface {
	ListUpcomingForFloor(ctx context.Context, floor int, now time.Time) ([]*domain.Booking, error)
}

// TimeProvider supplies the classification instant
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider provides the wall clock
type RealTimeProvider struct{}

// Now returns the current time
func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger is the logging interface the usecase depends on
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
