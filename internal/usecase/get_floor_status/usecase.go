package get_floor_status

import (
	"context"
	"fmt"

	"github.com/Lingges29/mypark/internal/domain"
)

// UseCase classifies every slot on a floor for a viewing user
type UseCase struct {
	slotRepo     SlotRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the floor-status usecase
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		bookingRepo:  bookingRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute returns the state of each slot on the floor at the current
// instant. An active booking marks the slot booked for every viewer; a
// future booking marks it reserved only for its owner; everything else is
// available.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetFloorStatus: user=%d, floor=%d", req.UserID, req.Floor)

	if req.Floor < 1 || req.Floor > domain.TotalFloors {
		uc.logger.Warn("GetFloorStatus: floor %d out of range", req.Floor)
		return nil, ErrFloorNotFound
	}

	now := uc.timeProvider.Now()

	slots, err := uc.slotRepo.ListByFloor(ctx, req.Floor)
	if err != nil {
		uc.logger.Error("GetFloorStatus: failed to list slots for floor %d: %v", req.Floor, err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.ListUpcomingForFloor(ctx, req.Floor, now)
	if err != nil {
		uc.logger.Error("GetFloorStatus: failed to list bookings for floor %d: %v", req.Floor, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	active := make(map[string]bool)
	futureOwn := make(map[string]*domain.Booking)

	for _, b := range bookings {
		switch {
		case b.IsActiveAt(now):
			active[b.SlotID] = true
		case b.IsFutureAt(now) && b.UserID == req.UserID:
			// keep the earliest reservation for display
			if cur, ok := futureOwn[b.SlotID]; !ok || b.StartTime.Before(cur.StartTime) {
				futureOwn[b.SlotID] = b
			}
		}
	}

	states := make([]SlotState, 0, len(slots))
	for _, slot := range slots {
		state := SlotState{SlotID: slot.ID, Status: domain.StatusAvailable}

		if active[slot.ID] {
			state.Status = domain.StatusBooked
		} else if reservation, ok := futureOwn[slot.ID]; ok {
			state.Status = domain.StatusFuture
			state.ReservedFrom = &reservation.StartTime
			state.ReservedUntil = &reservation.EndTime
		}

		state.Color = state.Status.Color()
		states = append(states, state)
	}

	return &Response{Floor: req.Floor, Slots: states}, nil
}
