package finalize_booking

import (
	"context"
	"time"

	"github.com/Lingges29/mypark/internal/domain"
	"github.com/Lingges29/mypark/internal/infra/events"
)

// BookingRepository is the booking store surface the usecase needs
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	AttachReceipt(ctx context.Context, id int64, receiptRef string) error
}

// PaymentRepository records confirmed payments
type PaymentRepository interface {
	Create(ctx context.Context, bookingID int64, paymentTime time.Time) (*domain.Payment, error)
}

// UserServiceClient reads and adjusts reward balances in the user directory
type UserServiceClient interface {
	GetRewardPoints(ctx context.Context, userID int64) (int, error)
	AdjustRewardPoints(ctx context.Context, userID int64, delta int) (int, error)
}

// EventPublisher emits booking lifecycle events
type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, event events.BookingConfirmed) error
}

// TransactionManager keeps the payment row and the receipt atomic
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// AnalyticsInvalidator drops cached aggregates after a successful write
type AnalyticsInvalidator interface {
	Invalidate(ctx context.Context) error
}

// TimeProvider supplies the payment timestamp
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
