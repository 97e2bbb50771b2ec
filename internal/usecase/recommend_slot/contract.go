package recommend_slot

import (
	"context"
	"time"

	"github.com/Lingges29/mypark/internal/domain"
)

// SlotRepository is the slot registry surface the usecase needs
type SlotRepository interface {
	ListUsage(ctx context.Context) ([]*domain.SlotUsage, error)
}

// BookingRepository is the booking store surface the usecase needs
type BookingRepository interface {
	ListActiveSlotIDs(ctx context.Context, now time.Time) ([]string, error)
}

// TimeProvider supplies the evaluation instant
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
