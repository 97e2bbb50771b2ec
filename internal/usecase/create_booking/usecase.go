package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lingges29/mypark/internal/domain"
	slotRepo "github.com/Lingges29/mypark/internal/infra/storage/slot"
	userClient "github.com/Lingges29/mypark/internal/integrations/userservice"
)

// UseCase creates conflict-checked bookings
type UseCase struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	userClient  UserServiceClient
	txManager   TransactionManager
	cache       AnalyticsInvalidator
	logger      Logger
}

// NewUseCase creates the booking-creation usecase
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	userClient UserServiceClient,
	txManager TransactionManager,
	cache AnalyticsInvalidator,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		userClient:  userClient,
		txManager:   txManager,
		cache:       cache,
		logger:      logger,
	}
}

// Execute books a slot for [StartTime, EndTime). The overlap check and the
// insert run in one serializable transaction, so two concurrent requests
// for overlapping windows on the same slot cannot both succeed.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, vehicle=%d, slot=%s, start=%s, end=%s",
		req.UserID, req.VehicleID, req.SlotID, req.StartTime, req.EndTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// The registry is immutable, so the slot lookup can stay outside the
	// transaction
	slot, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("CreateBooking: slot %s not found", req.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("CreateBooking: failed to get slot %s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	vehicle, err := uc.userClient.GetVehicle(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, userClient.ErrVehicleNotFound) {
			uc.logger.Warn("CreateBooking: vehicle id=%d not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("CreateBooking: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	if vehicle.UserID != req.UserID {
		uc.logger.Warn("CreateBooking: vehicle id=%d belongs to user=%d, not user=%d",
			req.VehicleID, vehicle.UserID, req.UserID)
		return nil, ErrVehicleNotOwned
	}

	amount := domain.PriceForInterval(req.StartTime, req.EndTime)

	var result *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		overlaps, err := uc.bookingRepo.HasOverlapping(txCtx, req.SlotID, req.StartTime, req.EndTime)
		if err != nil {
			uc.logger.Error("CreateBooking: overlap check failed for slot=%s: %v", req.SlotID, err)
			return fmt.Errorf("%w: overlap check failed: %v", ErrInternal, err)
		}
		if overlaps {
			uc.logger.Warn("CreateBooking: slot=%s already booked for [%s, %s)",
				req.SlotID, req.StartTime, req.EndTime)
			return ErrSlotConflict
		}

		booking := &domain.Booking{
			SlotID:    req.SlotID,
			UserID:    req.UserID,
			VehicleID: req.VehicleID,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Amount:    amount,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Invalidate(ctx); err != nil {
		// Stale aggregates expire on their own; the booking is committed
		uc.logger.Warn("CreateBooking: analytics cache invalidation failed: %v", err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, amount=%.2f", result.ID, result.Amount)

	return &Response{
		ID:        result.ID,
		SlotID:    result.SlotID,
		Floor:     slot.Floor,
		UserID:    result.UserID,
		VehicleID: result.VehicleID,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		Amount:    result.Amount,
		CreatedAt: result.CreatedAt,
	}, nil
}
