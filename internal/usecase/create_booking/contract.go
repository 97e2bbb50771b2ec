package create_booking

import (
	"context"
	"time"

	"github.com/Lingges29/mypark/internal/domain"
	"github.com/Lingges29/mypark/internal/integrations/userservice"
)

// BookingRepository is the booking store surface the usecase needs
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	HasOverlapping(ctx context.Context, slotID string, start, end time.Time) (bool, error)
}

// SlotRepository is the slot registry surface the usecase needs
type SlotRepository interface {
	GetByID(ctx context.Context, slotID string) (*domain.Slot, error)
}

// UserServiceClient resolves vehicles against the user directory
type UserServiceClient interface {
	GetVehicle(ctx context.Context, vehicleID int64) (*userservice.Vehicle, error)
}

// TransactionManager wraps the conflict check and the insert into one
// atomic unit
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
