package extend_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Lingges29/mypark/internal/domain"
	bookingRepo "github.com/Lingges29/mypark/internal/infra/storage/booking"
)

// UseCase extends a booking by whole half-hour units
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	cache       AnalyticsInvalidator
	logger      Logger
}

// NewUseCase creates the booking-extension usecase
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	cache AnalyticsInvalidator,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		cache:       cache,
		logger:      logger,
	}
}

// Execute pushes the booking's end time out by Units half-hour units and
// charges Units extra price units. The read and the update run in one
// serializable transaction. The extension is not conflict-checked against
// later bookings on the same slot.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ExtendBooking: user=%d, booking=%d, units=%d",
		req.UserID, req.BookingID, req.Units)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ExtendBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("ExtendBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("ExtendBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if booking.UserID != req.UserID {
			uc.logger.Warn("ExtendBooking: booking id=%d belongs to user=%d, not user=%d",
				req.BookingID, booking.UserID, req.UserID)
			return ErrBookingNotOwned
		}

		newEnd := booking.EndTime.Add(time.Duration(req.Units) * domain.SlotUnitDuration)
		extraAmount := domain.PriceForUnits(req.Units)

		if err := uc.bookingRepo.ExtendEnd(txCtx, booking.ID, newEnd, extraAmount); err != nil {
			uc.logger.Error("ExtendBooking: failed to extend booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to extend booking: %v", ErrInternal, err)
		}

		booking.EndTime = newEnd
		booking.Amount += extraAmount
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warn("ExtendBooking: analytics cache invalidation failed: %v", err)
	}

	uc.logger.Info("ExtendBooking: booking id=%d extended to %s, amount=%.2f",
		result.ID, result.EndTime, result.Amount)

	return &Response{
		ID:        result.ID,
		SlotID:    result.SlotID,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		Amount:    result.Amount,
	}, nil
}
