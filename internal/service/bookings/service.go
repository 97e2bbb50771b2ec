package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lingges29/mypark/internal/domain"
	bookingRepo "github.com/Lingges29/mypark/internal/infra/storage/booking"
	"github.com/Lingges29/mypark/internal/service/bookings/models"
)

// Service serves the read side of bookings: owner lookups, history and
// the dashboard
type Service struct {
	bookingRepo  BookingRepository
	userClient   UserServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates a bookings read service
func NewService(
	bookingRepo BookingRepository,
	userClient UserServiceClient,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		userClient:   userClient,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByID fetches a booking. Only the booking's owner may read it.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings returns the user's booking history, newest created first
func (s *Service) GetUserBookings(ctx context.Context, userID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", userID)

	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListByUser(ctx, userID, 0)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), userID)
	return models.FromDomainBookingList(bookings), nil
}

// GetDashboard assembles the user's dashboard: reward balance, the
// currently active booking if any, and the latest bookings
func (s *Service) GetDashboard(ctx context.Context, userID int64) (*models.DashboardResponse, error) {
	s.logger.Info("GetDashboard: assembling dashboard for user=%d", userID)

	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	points, err := s.userClient.GetRewardPoints(ctx, userID)
	if err != nil {
		s.logger.Error("GetDashboard: failed to get reward balance for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetDashboard - failed to get reward balance: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()

	active, err := s.bookingRepo.GetActiveForUser(ctx, userID, now)
	if err != nil && !errors.Is(err, bookingRepo.ErrBookingNotFound) {
		s.logger.Error("GetDashboard: failed to get active booking for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetDashboard - failed to get active booking: %v", ErrInternal, err)
	}

	recent, err := s.bookingRepo.ListByUser(ctx, userID, domain.RecentActivityLimit)
	if err != nil {
		s.logger.Error("GetDashboard: failed to list recent bookings for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetDashboard - failed to list recent bookings: %v", ErrInternal, err)
	}

	resp := &models.DashboardResponse{
		UserID:         userID,
		RewardPoints:   points,
		ActiveBooking:  models.FromDomainBooking(active),
		RecentActivity: models.FromDomainBookingList(recent).Bookings,
	}

	return resp, nil
}
