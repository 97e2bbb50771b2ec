package finalize_booking

import (
	finalizeBooking "github.com/Lingges29/mypark/internal/usecase/finalize_booking"
)

// FinalizeBookingRequest HTTP request model
type FinalizeBookingRequest struct {
	RedeemPoints int `json:"redeemPoints"`
}

// FinalizeBookingResponse HTTP response model
type FinalizeBookingResponse struct {
	BookingID      int64   `json:"bookingId"`
	ReceiptRef     string  `json:"receiptRef"`
	Amount         float64 `json:"amount"`
	Discount       float64 `json:"discount"`
	FinalAmount    float64 `json:"finalAmount"`
	PointsRedeemed int     `json:"pointsRedeemed"`
	PointsEarned   int     `json:"pointsEarned"`
	PointsBalance  int     `json:"pointsBalance"`
}

// FromUseCaseResponse converts the usecase response into the HTTP response
func FromUseCaseResponse(resp *finalizeBooking.Response) *FinalizeBookingResponse {
	return &FinalizeBookingResponse{
		BookingID:      resp.BookingID,
		ReceiptRef:     resp.ReceiptRef,
		Amount:         resp.Amount,
		Discount:       resp.Discount,
		FinalAmount:    resp.FinalAmount,
		PointsRedeemed: resp.PointsRedeemed,
		PointsEarned:   resp.PointsEarned,
		PointsBalance:  resp.PointsBalance,
	}
}
