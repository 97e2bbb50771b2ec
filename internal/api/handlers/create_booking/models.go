package create_booking

import (
	"time"

	createBooking "github.com/Lingges29/mypark/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	VehicleID int64  `json:"vehicleId"`
	SlotID    string `json:"slotId"`
	StartTime string `json:"startTime"` // RFC 3339
	EndTime   string `json:"endTime"`   // RFC 3339
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64   `json:"id"`
	SlotID    string  `json:"slotId"`
	Floor     int     `json:"floor"`
	UserID    int64   `json:"userId"`
	VehicleID int64   `json:"vehicleId"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request into the usecase model
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:    userID,
		VehicleID: r.VehicleID,
		SlotID:    r.SlotID,
		StartTime: start,
		EndTime:   end,
	}, nil
}

// FromUseCaseResponse converts the usecase response into the HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:        resp.ID,
		SlotID:    resp.SlotID,
		Floor:     resp.Floor,
		UserID:    resp.UserID,
		VehicleID: resp.VehicleID,
		StartTime: resp.StartTime.Format(time.RFC3339),
		EndTime:   resp.EndTime.Format(time.RFC3339),
		Amount:    resp.Amount,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
