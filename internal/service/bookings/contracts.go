package bookings

import (
	"context"
	"time"

	"github.com/Lingges29/mypark/internal/domain"
)

// BookingRepository is the booking store surface the service needs
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64, limit uint64) ([]*domain.Booking, error)
	GetActiveForUser(ctx context.Context, userID int64, now time.Time) (*domain.Booking, error)
}

// UserServiceClient reads reward balances from the user directory
type UserServiceClient interface {
	GetRewardPoints(ctx context.Context, userID int64) (int, error)
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

// Logger is the logging interface the service depends on
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
