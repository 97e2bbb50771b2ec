package models

import (
	"time"

	"github.com/Lingges29/mypark/internal/domain"
)

// Response models

// BookingResponse carries one booking over the API boundary
type BookingResponse struct {
	ID         int64     `json:"id"`
	SlotID     string    `json:"slotId"`
	UserID     int64     `json:"userId"`
	VehicleID  int64     `json:"vehicleId"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Amount     float64   `json:"amount"`
	Paid       bool      `json:"paid"`
	ReceiptRef *string   `json:"receiptRef,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BookingListResponse is a list of bookings
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// DashboardResponse is the user's at-a-glance view
type DashboardResponse struct {
	UserID         int64             `json:"userId"`
	RewardPoints   int               `json:"rewardPoints"`
	ActiveBooking  *BookingResponse  `json:"activeBooking,omitempty"`
	RecentActivity []BookingResponse `json:"recentActivity"`
}

// Conversion helpers

// FromDomainBooking converts a domain booking into its DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:         b.ID,
		SlotID:     b.SlotID,
		UserID:     b.UserID,
		VehicleID:  b.VehicleID,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Amount:     b.Amount,
		Paid:       b.IsPaid(),
		ReceiptRef: b.ReceiptRef,
		CreatedAt:  b.CreatedAt,
	}
}

// FromDomainBookingList converts a slice of domain bookings
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: out}
}
