package recommend_slot_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lingges29/mypark/internal/domain"
	"github.com/Lingges29/mypark/internal/usecase/recommend_slot"
)

type fakeSlotRepo struct {
	usage []*domain.SlotUsage
}

func (f *fakeSlotRepo) ListUsage(context.Context) ([]*domain.SlotUsage, error) {
	return f.usage, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) ListActiveSlotIDs(_ context.Context, now time.Time) ([]string, error) {
	seen := make(map[string]bool)
	var ids []string
	for _, b := range f.bookings {
		if b.IsActiveAt(now) && !seen[b.SlotID] {
			seen[b.SlotID] = true
			ids = append(ids, b.SlotID)
		}
	}
	return ids, nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func at(hour, minute int) time.Time {
	return time.Date(2025, 11, 3, hour, minute, 0, 0, time.UTC)
}

func newUseCase(usage []*domain.SlotUsage, bookings []*domain.Booking, now time.Time) *recommend_slot.UseCase {
	return recommend_slot.NewUseCase(
		&fakeSlotRepo{usage: usage},
		&fakeBookingRepo{bookings: bookings},
		fixedClock{now: now},
		nopLogger{},
	)
}

func TestExecute_PicksLeastUsedFreeSlot(t *testing.T) {
	usage := []*domain.SlotUsage{
		{SlotID: "P1", Floor: 1, Usage: 3},
		{SlotID: "P2", Floor: 1, Usage: 1},
		{SlotID: "P101", Floor: 2, Usage: 0},
	}
	uc := newUseCase(usage, nil, at(10, 0))

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "P101", resp.SlotID)
	assert.Equal(t, 2, resp.Floor)
	assert.Equal(t, 0, resp.Usage)
}

func TestExecute_SkipsOccupiedSlots(t *testing.T) {
	usage := []*domain.SlotUsage{
		{SlotID: "P1", Floor: 1, Usage: 0},
		{SlotID: "P2", Floor: 1, Usage: 5},
	}
	bookings := []*domain.Booking{
		{ID: 1, SlotID: "P1", UserID: 1, StartTime: at(9, 0), EndTime: at(11, 0)},
	}
	uc := newUseCase(usage, bookings, at(10, 0))

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "P2", resp.SlotID)
}

func TestExecute_SlotFreeExactlyAtBookingEnd(t *testing.T) {
	// A booking's end instant is excluded from the occupied interval
	usage := []*domain.SlotUsage{
		{SlotID: "P1", Floor: 1, Usage: 0},
		{SlotID: "P2", Floor: 1, Usage: 5},
	}
	bookings := []*domain.Booking{
		{ID: 1, SlotID: "P1", UserID: 1, StartTime: at(9, 0), EndTime: at(10, 0)},
	}
	uc := newUseCase(usage, bookings, at(10, 0))

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "P1", resp.SlotID)
}

func TestExecute_TieBreaksByFloorThenSlotNumber(t *testing.T) {
	usage := []*domain.SlotUsage{
		{SlotID: "P110", Floor: 2, Usage: 1},
		{SlotID: "P102", Floor: 2, Usage: 1},
		{SlotID: "P9", Floor: 1, Usage: 1},
		{SlotID: "P10", Floor: 1, Usage: 1},
	}
	uc := newUseCase(usage, nil, at(10, 0))

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "P9", resp.SlotID)
}

func TestExecute_NumericOrderNotLexicographic(t *testing.T) {
	usage := []*domain.SlotUsage{
		{SlotID: "P100", Floor: 1, Usage: 2},
		{SlotID: "P20", Floor: 1, Usage: 2},
	}
	uc := newUseCase(usage, nil, at(10, 0))

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "P20", resp.SlotID)
}

func TestExecute_NoFreeSlot(t *testing.T) {
	usage := []*domain.SlotUsage{
		{SlotID: "P1", Floor: 1, Usage: 0},
	}
	bookings := []*domain.Booking{
		{ID: 1, SlotID: "P1", UserID: 1, StartTime: at(9, 0), EndTime: at(11, 0)},
	}
	uc := newUseCase(usage, bookings, at(10, 0))

	_, err := uc.Execute(context.Background())

	assert.ErrorIs(t, err, recommend_slot.ErrNoSlotAvailable)
}
