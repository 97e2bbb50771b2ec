package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Lingges29/mypark/internal/domain"
	"github.com/Lingges29/mypark/pkg/ptr"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 11, 3, hour, minute, 0, 0, time.UTC)
}

func booking(start, end time.Time) *domain.Booking {
	return &domain.Booking{ID: 1, SlotID: "P1", UserID: 1, StartTime: start, EndTime: end}
}

func TestBooking_Overlaps(t *testing.T) {
	b := booking(at(10, 0), at(11, 0))

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		overlaps bool
	}{
		{"identical interval", at(10, 0), at(11, 0), true},
		{"partial from the left", at(9, 30), at(10, 30), true},
		{"partial from the right", at(10, 30), at(11, 30), true},
		{"candidate contains booking", at(9, 0), at(12, 0), true},
		{"booking contains candidate", at(10, 15), at(10, 45), true},
		{"touching at booking end", at(11, 0), at(12, 0), false},
		{"touching at booking start", at(9, 0), at(10, 0), false},
		{"fully before", at(8, 0), at(9, 0), false},
		{"fully after", at(12, 0), at(13, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, b.Overlaps(tt.start, tt.end))
		})
	}
}

func TestBooking_IsActiveAt(t *testing.T) {
	b := booking(at(10, 0), at(11, 0))

	assert.True(t, b.IsActiveAt(at(10, 0)), "start is inclusive")
	assert.True(t, b.IsActiveAt(at(10, 30)))
	assert.False(t, b.IsActiveAt(at(11, 0)), "end is exclusive")
	assert.False(t, b.IsActiveAt(at(9, 59)))
}

func TestBooking_Lifecycle(t *testing.T) {
	b := booking(at(10, 0), at(11, 0))

	assert.True(t, b.IsFutureAt(at(9, 0)))
	assert.False(t, b.IsFutureAt(at(10, 0)))

	assert.False(t, b.IsHistoricalAt(at(10, 59)))
	assert.True(t, b.IsHistoricalAt(at(11, 0)))
}

func TestBooking_IsPaid(t *testing.T) {
	b := booking(at(10, 0), at(11, 0))
	assert.False(t, b.IsPaid())

	b.ReceiptRef = ptr.Ptr("receipt-token")
	assert.True(t, b.IsPaid())
}

func TestPriceForInterval(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    float64
	}{
		{"one unit", 30, 2.5},
		{"two units", 60, 5.0},
		{"fractional", 45, 3.75},
		{"three hours", 180, 15.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := at(10, 0)
			end := start.Add(time.Duration(tt.minutes) * time.Minute)
			assert.InDelta(t, tt.want, domain.PriceForInterval(start, end), 1e-9)
		})
	}
}

func TestPriceForUnits(t *testing.T) {
	assert.Equal(t, 2.5, domain.PriceForUnits(1))
	assert.Equal(t, 7.5, domain.PriceForUnits(3))
}
