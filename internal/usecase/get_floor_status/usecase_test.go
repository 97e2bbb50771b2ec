package get_floor_status_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lingges29/mypark/internal/domain"
	"github.com/Lingges29/mypark/internal/usecase/get_floor_status"
)

type fakeSlotRepo struct {
	slots []*domain.Slot
}

func (f *fakeSlotRepo) ListByFloor(_ context.Context, floor int) ([]*domain.Slot, error) {
	var out []*domain.Slot
	for _, s := range f.slots {
		if s.Floor == floor {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	floors   map[string]int
}

func (f *fakeBookingRepo) ListUpcomingForFloor(_ context.Context, floor int, now time.Time) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if f.floors[b.SlotID] == floor && b.EndTime.After(now) {
			out = append(out, b)
		}
	}
	return out, nil
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

func newUseCase(bookings []*domain.Booking, now time.Time) *get_floor_status.UseCase {
	slots := &fakeSlotRepo{slots: []*domain.Slot{
		{ID: "P1", Floor: 1},
		{ID: "P2", Floor: 1},
		{ID: "P3", Floor: 1},
		{ID: "P101", Floor: 2},
	}}
	floors := map[string]int{"P1": 1, "P2": 1, "P3": 1, "P101": 2}
	return get_floor_status.NewUseCase(
		slots,
		&fakeBookingRepo{bookings: bookings, floors: floors},
		fixedClock{now: now},
		nopLogger{},
	)
}

func statusOf(t *testing.T, resp *get_floor_status.Response, slotID string) get_floor_status.SlotState {
	t.Helper()
	for _, s := range resp.Slots {
		if s.SlotID == slotID {
			return s
		}
	}
	t.Fatalf("slot %s not in response", slotID)
	return get_floor_status.SlotState{}
}

func TestExecute_ActiveBookingIsBookedForEveryViewer(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, SlotID: "P1", UserID: 1, StartTime: at(10, 0), EndTime: at(11, 0)},
	}

	for _, viewer := range []int64{1, 2} {
		uc := newUseCase(bookings, at(10, 30))

		resp, err := uc.Execute(context.Background(), &get_floor_status.Request{UserID: viewer, Floor: 1})

		require.NoError(t, err)
		state := statusOf(t, resp, "P1")
		assert.Equal(t, domain.StatusBooked, state.Status)
		assert.Equal(t, "red", state.Color)
	}
}

func TestExecute_FutureBookingIsVisibleOnlyToItsOwner(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, SlotID: "P2", UserID: 1, StartTime: at(14, 0), EndTime: at(15, 0)},
	}

	owner := newUseCase(bookings, at(10, 0))
	resp, err := owner.Execute(context.Background(), &get_floor_status.Request{UserID: 1, Floor: 1})
	require.NoError(t, err)
	state := statusOf(t, resp, "P2")
	assert.Equal(t, domain.StatusFuture, state.Status)
	assert.Equal(t, "yellow", state.Color)
	require.NotNil(t, state.ReservedFrom)
	assert.Equal(t, at(14, 0), *state.ReservedFrom)

	other := newUseCase(bookings, at(10, 0))
	resp, err = other.Execute(context.Background(), &get_floor_status.Request{UserID: 2, Floor: 1})
	require.NoError(t, err)
	state = statusOf(t, resp, "P2")
	assert.Equal(t, domain.StatusAvailable, state.Status)
	assert.Equal(t, "green", state.Color)
}

func TestExecute_ActiveBookingWinsOverOwnFutureBooking(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, SlotID: "P1", UserID: 2, StartTime: at(10, 0), EndTime: at(11, 0)},
		{ID: 2, SlotID: "P1", UserID: 1, StartTime: at(14, 0), EndTime: at(15, 0)},
	}
	uc := newUseCase(bookings, at(10, 30))

	resp, err := uc.Execute(context.Background(), &get_floor_status.Request{UserID: 1, Floor: 1})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusBooked, statusOf(t, resp, "P1").Status)
}

func TestExecute_SlotIsAvailableExactlyAtBookingEnd(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, SlotID: "P1", UserID: 1, StartTime: at(10, 0), EndTime: at(11, 0)},
	}
	uc := newUseCase(bookings, at(11, 0))

	resp, err := uc.Execute(context.Background(), &get_floor_status.Request{UserID: 2, Floor: 1})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusAvailable, statusOf(t, resp, "P1").Status)
}

func TestExecute_ReadIsIdempotent(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, SlotID: "P1", UserID: 1, StartTime: at(10, 0), EndTime: at(11, 0)},
		{ID: 2, SlotID: "P2", UserID: 1, StartTime: at(14, 0), EndTime: at(15, 0)},
	}
	uc := newUseCase(bookings, at(10, 30))

	first, err := uc.Execute(context.Background(), &get_floor_status.Request{UserID: 1, Floor: 1})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &get_floor_status.Request{UserID: 1, Floor: 1})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExecute_RejectsUnknownFloor(t *testing.T) {
	uc := newUseCase(nil, at(10, 0))

	_, err := uc.Execute(context.Background(), &get_floor_status.Request{UserID: 1, Floor: 5})

	assert.ErrorIs(t, err, get_floor_status.ErrFloorNotFound)
}
