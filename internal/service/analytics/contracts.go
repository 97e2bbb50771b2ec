package analytics

import (
	"context"
	"time"

	"github.com/Lingges29/mypark/internal/domain"
	analyticsRepo "github.com/Lingges29/mypark/internal/infra/storage/analytics"
	"github.com/Lingges29/mypark/internal/service/analytics/models"
)

// AnalyticsRepository is the aggregate-query surface the service needs
type AnalyticsRepository interface {
	CountActiveBookings(ctx context.Context, now time.Time) (int, error)
	CountDistinctActiveSlots(ctx context.Context, now time.Time) (int, error)
	CountBookingsWithinNextHour(ctx context.Context, now time.Time) (int, error)
	CountPerDay(ctx context.Context) ([]analyticsRepo.BucketCount, error)
	CountPerMonth(ctx context.Context) ([]analyticsRepo.BucketCount, error)
	CountPerStartHour(ctx context.Context) ([]analyticsRepo.BucketCount, error)
	CountPerFloor(ctx context.Context) ([]analyticsRepo.BucketCount, error)
	ListLeastUsedSlots(ctx context.Context, limit uint64) ([]*domain.SlotUsage, error)
}

// SlotRepository counts the slot grid
type SlotRepository interface {
	Count(ctx context.Context) (int, error)
}

// PaymentRepository sums settled income
type PaymentRepository interface {
	SumPaidAmount(ctx context.Context) (float64, error)
}

// SnapshotCache stores the assembled analytics snapshot between requests
type SnapshotCache interface {
	Get(ctx context.Context) (*models.AnalyticsResponse, error)
	Set(ctx context.Context, snapshot *models.AnalyticsResponse) error
	Invalidate(ctx context.Context) error
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
