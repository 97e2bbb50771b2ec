package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lingges29/mypark/internal/domain"
	analyticsRepo "github.com/Lingges29/mypark/internal/infra/storage/analytics"
	"github.com/Lingges29/mypark/internal/service/analytics"
	"github.com/Lingges29/mypark/internal/service/analytics/models"
)

type fakeAnalyticsRepo struct {
	active    int
	booked    int
	upcoming  int
	perDay    []analyticsRepo.BucketCount
	perMonth  []analyticsRepo.BucketCount
	perHour   []analyticsRepo.BucketCount
	perFloor  []analyticsRepo.BucketCount
	leastUsed []*domain.SlotUsage
	calls     int
}

func (f *fakeAnalyticsRepo) CountActiveBookings(context.Context, time.Time) (int, error) {
	f.calls++
	return f.active, nil
}

func (f *fakeAnalyticsRepo) CountDistinctActiveSlots(context.Context, time.Time) (int, error) {
	return f.booked, nil
}

func (f *fakeAnalyticsRepo) CountBookingsWithinNextHour(context.Context, time.Time) (int, error) {
	return f.upcoming, nil
}

func (f *fakeAnalyticsRepo) CountPerDay(context.Context) ([]analyticsRepo.BucketCount, error) {
	return f.perDay, nil
}

func (f *fakeAnalyticsRepo) CountPerMonth(context.Context) ([]analyticsRepo.BucketCount, error) {
	return f.perMonth, nil
}

func (f *fakeAnalyticsRepo) CountPerStartHour(context.Context) ([]analyticsRepo.BucketCount, error) {
	return f.perHour, nil
}

func (f *fakeAnalyticsRepo) CountPerFloor(context.Context) ([]analyticsRepo.BucketCount, error) {
	return f.perFloor, nil
}

func (f *fakeAnalyticsRepo) ListLeastUsedSlots(_ context.Context, limit uint64) ([]*domain.SlotUsage, error) {
	if uint64(len(f.leastUsed)) > limit {
		return f.leastUsed[:limit], nil
	}
	return f.leastUsed, nil
}

type fakeSlotRepo struct {
	total int
}

func (f *fakeSlotRepo) Count(context.Context) (int, error) { return f.total, nil }

type fakePaymentRepo struct {
	income float64
}

func (f *fakePaymentRepo) SumPaidAmount(context.Context) (float64, error) { return f.income, nil }

type memoryCache struct {
	snapshot *models.AnalyticsResponse
}

func (c *memoryCache) Get(context.Context) (*models.AnalyticsResponse, error) {
	if c.snapshot == nil {
		return nil, analytics.ErrCacheMiss
	}
	return c.snapshot, nil
}

func (c *memoryCache) Set(_ context.Context, snapshot *models.AnalyticsResponse) error {
	c.snapshot = snapshot
	return nil
}

func (c *memoryCache) Invalidate(context.Context) error {
	c.snapshot = nil
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(repo *fakeAnalyticsRepo, total int, income float64, cache analytics.SnapshotCache) *analytics.Service {
	return analytics.NewService(
		repo,
		&fakeSlotRepo{total: total},
		&fakePaymentRepo{income: income},
		cache,
		fixedClock{now: time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC)},
		nopLogger{},
	)
}

func TestGetAnalytics_BuildsSnapshot(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		active:   12,
		booked:   10,
		upcoming: 20,
		perDay:   []analyticsRepo.BucketCount{{Label: "2025-11-03", Count: 12}},
		perMonth: []analyticsRepo.BucketCount{{Label: "2025-11", Count: 12}},
		perHour: []analyticsRepo.BucketCount{
			{Label: "09", Count: 3},
			{Label: "14", Count: 7},
		},
		perFloor: []analyticsRepo.BucketCount{{Label: "1", Count: 8}, {Label: "2", Count: 4}},
		leastUsed: []*domain.SlotUsage{
			{SlotID: "P7", Floor: 1, Usage: 0},
		},
	}
	svc := newService(repo, 400, 125.5, &memoryCache{})

	snapshot, err := svc.GetAnalytics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 400, snapshot.TotalSlots)
	assert.Equal(t, 12, snapshot.ActiveBookings)
	assert.Equal(t, 10, snapshot.BookedSlots)
	assert.Equal(t, 390, snapshot.AvailableSlots)
	assert.Equal(t, 125.5, snapshot.TotalIncome)
	assert.Equal(t, "14:00 - 16:00", snapshot.PeakHours)
	assert.Equal(t, 5.0, snapshot.NextHour.Percent)
	assert.Equal(t, "Low", snapshot.NextHour.Level)
	require.Len(t, snapshot.LeastUsedSlots, 1)
	assert.Equal(t, "P7", snapshot.LeastUsedSlots[0].SlotID)
}

func TestGetAnalytics_ServesCachedSnapshot(t *testing.T) {
	repo := &fakeAnalyticsRepo{active: 1}
	cache := &memoryCache{}
	svc := newService(repo, 400, 0, cache)

	first, err := svc.GetAnalytics(context.Background())
	require.NoError(t, err)

	second, err := svc.GetAnalytics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.calls)
}

func TestGetAnalytics_RebuildsAfterInvalidation(t *testing.T) {
	repo := &fakeAnalyticsRepo{active: 1}
	cache := &memoryCache{}
	svc := newService(repo, 400, 0, cache)

	_, err := svc.GetAnalytics(context.Background())
	require.NoError(t, err)
	require.NoError(t, cache.Invalidate(context.Background()))

	_, err = svc.GetAnalytics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, repo.calls)
}

func TestGetAnalytics_OccupancyBands(t *testing.T) {
	tests := []struct {
		name     string
		upcoming int
		percent  float64
		level    string
	}{
		{"low", 30, 30.0, "Low"},
		{"medium", 45, 45.0, "Medium"},
		{"high", 80, 80.0, "High"},
		{"clamped", 150, 100.0, "High"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeAnalyticsRepo{upcoming: tt.upcoming}
			svc := newService(repo, 100, 0, &memoryCache{})

			snapshot, err := svc.GetAnalytics(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.percent, snapshot.NextHour.Percent)
			assert.Equal(t, tt.level, snapshot.NextHour.Level)
		})
	}
}

func TestGetAnalytics_PeakHoursWithoutData(t *testing.T) {
	svc := newService(&fakeAnalyticsRepo{}, 400, 0, &memoryCache{})

	snapshot, err := svc.GetAnalytics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "N/A", snapshot.PeakHours)
}
