package extend_booking

import (
	"context"
	"time"

	"github.com/Lingges29/mypark/internal/domain"
)

// BookingRepository is the booking store surface the usecase needs
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ExtendEnd(ctx context.Context, id int64, newEnd time.Time, extraAmount float64) error
}

// TransactionManager keeps the read and the update atomic
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// AnalyticsInvalidator drops cached aggregates after a successful write
type AnalyticsInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Logger is the logging interface the usecase depends on
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
