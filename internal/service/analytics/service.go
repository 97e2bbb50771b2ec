package analytics

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/Lingges29/mypark/internal/domain"
	analyticsRepo "github.com/Lingges29/mypark/internal/infra/storage/analytics"
	"github.com/Lingges29/mypark/internal/service/analytics/models"
)

// Occupancy prediction bands for the coming hour
const (
	occupancyMediumFrom = 40.0
	occupancyHighFrom   = 70.0

	// peakWindowHours is the width of the reported peak window
	peakWindowHours = 2
)

// Service assembles the admin analytics snapshot
type Service struct {
	analyticsRepo AnalyticsRepository
	slotRepo      SlotRepository
	paymentRepo   PaymentRepository
	cache         SnapshotCache
	timeProvider  TimeProvider
	logger        Logger
}

// NewService creates the analytics service
func NewService(
	analyticsRepo AnalyticsRepository,
	slotRepo SlotRepository,
	paymentRepo PaymentRepository,
	cache SnapshotCache,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		analyticsRepo: analyticsRepo,
		slotRepo:      slotRepo,
		paymentRepo:   paymentRepo,
		cache:         cache,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// GetAnalytics returns the analytics snapshot, served from cache when a
// fresh one exists
func (s *Service) GetAnalytics(ctx context.Context) (*models.AnalyticsResponse, error) {
	cached, err := s.cache.Get(ctx)
	if err == nil {
		s.logger.Info("GetAnalytics: serving cached snapshot")
		return cached, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		s.logger.Warn("GetAnalytics: cache read failed: %v", err)
	}

	snapshot, err := s.buildSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, snapshot); err != nil {
		s.logger.Warn("GetAnalytics: cache write failed: %v", err)
	}

	return snapshot, nil
}

func (s *Service) buildSnapshot(ctx context.Context) (*models.AnalyticsResponse, error) {
	now := s.timeProvider.Now()

	totalSlots, err := s.slotRepo.Count(ctx)
	if err != nil {
		return nil, s.fail("count slots", err)
	}

	activeBookings, err := s.analyticsRepo.CountActiveBookings(ctx, now)
	if err != nil {
		return nil, s.fail("count active bookings", err)
	}

	bookedSlots, err := s.analyticsRepo.CountDistinctActiveSlots(ctx, now)
	if err != nil {
		return nil, s.fail("count booked slots", err)
	}

	income, err := s.paymentRepo.SumPaidAmount(ctx)
	if err != nil {
		return nil, s.fail("sum paid income", err)
	}

	perDay, err := s.analyticsRepo.CountPerDay(ctx)
	if err != nil {
		return nil, s.fail("count per day", err)
	}

	perMonth, err := s.analyticsRepo.CountPerMonth(ctx)
	if err != nil {
		return nil, s.fail("count per month", err)
	}

	perHour, err := s.analyticsRepo.CountPerStartHour(ctx)
	if err != nil {
		return nil, s.fail("count per start hour", err)
	}

	perFloor, err := s.analyticsRepo.CountPerFloor(ctx)
	if err != nil {
		return nil, s.fail("count per floor", err)
	}

	leastUsed, err := s.analyticsRepo.ListLeastUsedSlots(ctx, domain.UnderusedSlotsLimit)
	if err != nil {
		return nil, s.fail("list least used slots", err)
	}

	upcoming, err := s.analyticsRepo.CountBookingsWithinNextHour(ctx, now)
	if err != nil {
		return nil, s.fail("count next-hour bookings", err)
	}

	snapshot := &models.AnalyticsResponse{
		TotalSlots:       totalSlots,
		ActiveBookings:   activeBookings,
		BookedSlots:      bookedSlots,
		AvailableSlots:   totalSlots - bookedSlots,
		TotalIncome:      income,
		BookingsPerDay:   toBuckets(perDay),
		BookingsPerMonth: toBuckets(perMonth),
		BookingsPerHour:  toBuckets(perHour),
		FloorUsage:       toBuckets(perFloor),
		LeastUsedSlots:   toSlotUsage(leastUsed),
		PeakHours:        peakWindow(perHour),
		NextHour:         predictOccupancy(upcoming, totalSlots),
	}

	s.logger.Info("GetAnalytics: built snapshot, active=%d, booked=%d/%d",
		activeBookings, bookedSlots, totalSlots)

	return snapshot, nil
}

func (s *Service) fail(action string, err error) error {
	s.logger.Error("GetAnalytics: failed to %s: %v", action, err)
	return fmt.Errorf("%w: failed to %s: %v", ErrInternal, action, err)
}

// peakWindow reports the busiest start hour as a two-hour window
func peakWindow(perHour []analyticsRepo.BucketCount) string {
	best := -1
	bestCount := 0
	for _, b := range perHour {
		hour, err := strconv.Atoi(b.Label)
		if err != nil {
			continue
		}
		if b.Count > bestCount {
			best = hour
			bestCount = b.Count
		}
	}

	if best < 0 {
		return "N/A"
	}

	return fmt.Sprintf("%02d:00 - %02d:00", best, (best+peakWindowHours)%24)
}

// predictOccupancy turns the next-hour booking count into a percentage of
// the grid with a coarse load band
func predictOccupancy(upcoming, totalSlots int) models.Occupancy {
	if totalSlots <= 0 {
		return models.Occupancy{Percent: 0, Level: "Low"}
	}

	percent := float64(upcoming) / float64(totalSlots) * 100
	if percent > 100 {
		percent = 100
	}
	percent = math.Round(percent*100) / 100

	level := "Low"
	switch {
	case percent >= occupancyHighFrom:
		level = "High"
	case percent >= occupancyMediumFrom:
		level = "Medium"
	}

	return models.Occupancy{Percent: percent, Level: level}
}

func toBuckets(in []analyticsRepo.BucketCount) []models.Bucket {
	out := make([]models.Bucket, 0, len(in))
	for _, b := range in {
		out = append(out, models.Bucket{Label: b.Label, Count: b.Count})
	}
	return out
}

func toSlotUsage(in []*domain.SlotUsage) []models.SlotUsage {
	out := make([]models.SlotUsage, 0, len(in))
	for _, u := range in {
		out = append(out, models.SlotUsage{SlotID: u.SlotID, Floor: u.Floor, Usage: u.Usage})
	}
	return out
}
