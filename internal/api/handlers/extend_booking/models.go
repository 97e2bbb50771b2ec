package extend_booking

import (
	"time"

	extendBooking "github.com/Lingges29/mypark/internal/usecase/extend_booking"
)

// ExtendBookingRequest HTTP request model
type ExtendBookingRequest struct {
	Units int `json:"units"`
}

// ExtendBookingResponse HTTP response model
type ExtendBookingResponse struct {
	ID        int64   `json:"id"`
	SlotID    string  `json:"slotId"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Amount    float64 `json:"amount"`
}

// FromUseCaseResponse converts the usecase response into the HTTP response
func FromUseCaseResponse(resp *extendBooking.Response) *ExtendBookingResponse {
	return &ExtendBookingResponse{
		ID:        resp.ID,
		SlotID:    resp.SlotID,
		StartTime: resp.StartTime.Format(time.RFC3339),
		EndTime:   resp.EndTime.Format(time.RFC3339),
		Amount:    resp.Amount,
	}
}
