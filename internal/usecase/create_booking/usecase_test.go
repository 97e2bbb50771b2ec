package create_booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lingges29/mypark/internal/domain"
	slotRepo "github.com/Lingges29/mypark/internal/infra/storage/slot"
	"github.com/Lingges29/mypark/internal/integrations/userservice"
	"github.com/Lingges29/mypark/internal/usecase/create_booking"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) HasOverlapping(_ context.Context, slotID string, start, end time.Time) (bool, error) {
	for _, b := range f.bookings {
		if b.SlotID == slotID && b.Overlaps(start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	b.ID = f.nextID
	b.CreatedAt = time.Now()
	f.bookings = append(f.bookings, b)
	return b, nil
}

type fakeSlotRepo struct {
	slots map[string]*domain.Slot
}

func (f *fakeSlotRepo) GetByID(_ context.Context, slotID string) (*domain.Slot, error) {
	s, ok := f.slots[slotID]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	return s, nil
}

type fakeUserClient struct {
	vehicles map[int64]*userservice.Vehicle
}

func (f *fakeUserClient) GetVehicle(_ context.Context, vehicleID int64) (*userservice.Vehicle, error) {
	v, ok := f.vehicles[vehicleID]
	if !ok {
		return nil, userservice.ErrVehicleNotFound
	}
	return v, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopCache struct{}

func (nopCache) Invalidate(context.Context) error { return nil }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(bookings *fakeBookingRepo) *create_booking.UseCase {
	return create_booking.NewUseCase(
		bookings,
		&fakeSlotRepo{slots: map[string]*domain.Slot{
			"P1": {ID: "P1", Floor: 1},
		}},
		&fakeUserClient{vehicles: map[int64]*userservice.Vehicle{
			7: {ID: 7, UserID: 1, Brand: "Proton", Plate: "WXY 1234"},
			8: {ID: 8, UserID: 2, Brand: "Perodua", Plate: "ABC 777"},
		}},
		fakeTxManager{},
		nopCache{},
		nopLogger{},
	)
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 11, 3, hour, minute, 0, 0, time.UTC)
}

func TestExecute_BooksEmptySlot(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newUseCase(repo)

	resp, err := uc.Execute(context.Background(), &create_booking.Request{
		UserID:    1,
		VehicleID: 7,
		SlotID:    "P1",
		StartTime: at(10, 0),
		EndTime:   at(11, 0),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "P1", resp.SlotID)
	assert.Equal(t, 1, resp.Floor)
	assert.Equal(t, 5.0, resp.Amount)
}

func TestExecute_RejectsOverlappingWindow(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newUseCase(repo)

	_, err := uc.Execute(context.Background(), &create_booking.Request{
		UserID: 1, VehicleID: 7, SlotID: "P1",
		StartTime: at(10, 0), EndTime: at(11, 0),
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &create_booking.Request{
		UserID: 1, VehicleID: 7, SlotID: "P1",
		StartTime: at(10, 30), EndTime: at(11, 30),
	})

	assert.ErrorIs(t, err, create_booking.ErrSlotConflict)
	assert.Len(t, repo.bookings, 1)
}

func TestExecute_AllowsTouchingBoundary(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newUseCase(repo)

	_, err := uc.Execute(context.Background(), &create_booking.Request{
		UserID: 1, VehicleID: 7, SlotID: "P1",
		StartTime: at(10, 0), EndTime: at(11, 0),
	})
	require.NoError(t, err)

	// A booking starting exactly when the previous one ends is not an
	// overlap
	resp, err := uc.Execute(context.Background(), &create_booking.Request{
		UserID: 1, VehicleID: 7, SlotID: "P1",
		StartTime: at(11, 0), EndTime: at(12, 0),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.ID)
}

func TestExecute_FractionalUnitsPricedLinearly(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{})

	resp, err := uc.Execute(context.Background(), &create_booking.Request{
		UserID: 1, VehicleID: 7, SlotID: "P1",
		StartTime: at(10, 0), EndTime: at(10, 45),
	})

	require.NoError(t, err)
	assert.InDelta(t, 3.75, resp.Amount, 1e-9)
}

func TestExecute_RejectsEndNotAfterStart(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &create_booking.Request{
		UserID: 1, VehicleID: 7, SlotID: "P1",
		StartTime: at(11, 0), EndTime: at(11, 0),
	})

	assert.ErrorIs(t, err, create_booking.ErrInvalidInput)
}

func TestExecute_RejectsUnknownSlot(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &create_booking.Request{
		UserID: 1, VehicleID: 7, SlotID: "P999",
		StartTime: at(10, 0), EndTime: at(11, 0),
	})

	assert.ErrorIs(t, err, create_booking.ErrSlotNotFound)
}

func TestExecute_RejectsForeignVehicle(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newUseCase(repo)

	_, err := uc.Execute(context.Background(), &create_booking.Request{
		UserID: 1, VehicleID: 8, SlotID: "P1",
		StartTime: at(10, 0), EndTime: at(11, 0),
	})

	assert.ErrorIs(t, err, create_booking.ErrVehicleNotOwned)
	assert.Empty(t, repo.bookings)
}
