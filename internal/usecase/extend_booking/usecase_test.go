package extend_booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lingges29/mypark/internal/domain"
	bookingRepo "github.com/Lingges29/mypark/internal/infra/storage/booking"
	"github.com/Lingges29/mypark/internal/usecase/extend_booking"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) ExtendEnd(_ context.Context, id int64, newEnd time.Time, extraAmount float64) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.EndTime = newEnd
	b.Amount += extraAmount
	return nil
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

func at(hour, minute int) time.Time {
	return time.Date(2025, 11, 3, hour, minute, 0, 0, time.UTC)
}

func newUseCase(repo *fakeBookingRepo) *extend_booking.UseCase {
	return extend_booking.NewUseCase(repo, fakeTxManager{}, nopCache{}, nopLogger{})
}

func TestExecute_ExtendsEndAndAmount(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, SlotID: "P1", UserID: 1, StartTime: at(10, 0), EndTime: at(11, 0), Amount: 5.0},
	}}
	uc := newUseCase(repo)

	resp, err := uc.Execute(context.Background(), &extend_booking.Request{
		UserID: 1, BookingID: 1, Units: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, at(12, 0), resp.EndTime)
	assert.Equal(t, 10.0, resp.Amount)
	assert.Equal(t, at(12, 0), repo.bookings[1].EndTime)
	assert.Equal(t, 10.0, repo.bookings[1].Amount)
}

func TestExecute_ExtensionCanOverlapLaterBooking(t *testing.T) {
	// Extension is not conflict-checked, so pushing a booking's end past
	// the start of the next booking on the same slot succeeds
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, SlotID: "P1", UserID: 1, StartTime: at(10, 0), EndTime: at(11, 0), Amount: 5.0},
		2: {ID: 2, SlotID: "P1", UserID: 2, StartTime: at(11, 0), EndTime: at(12, 0), Amount: 5.0},
	}}
	uc := newUseCase(repo)

	resp, err := uc.Execute(context.Background(), &extend_booking.Request{
		UserID: 1, BookingID: 1, Units: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, at(11, 30), resp.EndTime)
	assert.True(t, repo.bookings[1].Overlaps(repo.bookings[2].StartTime, repo.bookings[2].EndTime))
}

func TestExecute_RejectsNonPositiveUnits(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{bookings: map[int64]*domain.Booking{}})

	_, err := uc.Execute(context.Background(), &extend_booking.Request{
		UserID: 1, BookingID: 1, Units: 0,
	})

	assert.ErrorIs(t, err, extend_booking.ErrInvalidInput)
}

func TestExecute_UnknownBooking(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{bookings: map[int64]*domain.Booking{}})

	_, err := uc.Execute(context.Background(), &extend_booking.Request{
		UserID: 1, BookingID: 42, Units: 1,
	})

	assert.ErrorIs(t, err, extend_booking.ErrBookingNotFound)
}

func TestExecute_RejectsForeignBooking(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, SlotID: "P1", UserID: 2, StartTime: at(10, 0), EndTime: at(11, 0), Amount: 5.0},
	}}
	uc := newUseCase(repo)

	_, err := uc.Execute(context.Background(), &extend_booking.Request{
		UserID: 1, BookingID: 1, Units: 1,
	})

	assert.ErrorIs(t, err, extend_booking.ErrBookingNotOwned)
	assert.Equal(t, at(11, 0), repo.bookings[1].EndTime)
}
