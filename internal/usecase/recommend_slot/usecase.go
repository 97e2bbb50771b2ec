package recommend_slot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Lingges29/mypark/internal/domain"
)

// UseCase picks the least-used slot that is currently free
type UseCase struct {
	slotRepo     SlotRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the slot-recommendation usecase
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

// Execute recommends the free slot with the fewest historical bookings.
// A slot is free when no booking covers the current instant; a booking
// ending exactly now does not occupy the slot. Ties break by lowest floor,
// then by slot id in numeric order.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()

	activeIDs, err := uc.bookingRepo.ListActiveSlotIDs(ctx, now)
	if err != nil {
		uc.logger.Error("RecommendSlot: failed to list occupied slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list occupied slots: %v", ErrInternal, err)
	}

	occupied := make(map[string]bool, len(activeIDs))
	for _, id := range activeIDs {
		occupied[id] = true
	}

	usage, err := uc.slotRepo.ListUsage(ctx)
	if err != nil {
		uc.logger.Error("RecommendSlot: failed to list slot usage: %v", err)
		return nil, fmt.Errorf("%w: failed to list slot usage: %v", ErrInternal, err)
	}

	var best *domain.SlotUsage
	for _, candidate := range usage {
		if occupied[candidate.SlotID] {
			continue
		}
		if best == nil || preferable(candidate, best) {
			best = candidate
		}
	}

	if best == nil {
		uc.logger.Warn("RecommendSlot: no free slot at %s", now)
		return nil, ErrNoSlotAvailable
	}

	uc.logger.Info("RecommendSlot: recommending slot=%s, floor=%d, usage=%d",
		best.SlotID, best.Floor, best.Usage)

	return &Response{
		SlotID: best.SlotID,
		Floor:  best.Floor,
		Usage:  best.Usage,
	}, nil
}

// preferable reports whether a should be recommended over b
func preferable(a, b *domain.SlotUsage) bool {
	if a.Usage != b.Usage {
		return a.Usage < b.Usage
	}
	if a.Floor != b.Floor {
		return a.Floor < b.Floor
	}
	return slotNumber(a.SlotID) < slotNumber(b.SlotID)
}

// slotNumber extracts the numeric suffix of a slot id like "P42"
func slotNumber(slotID string) int {
	n, err := strconv.Atoi(strings.TrimLeft(slotID, "P"))
	if err != nil {
		return 0
	}
	return n
}
