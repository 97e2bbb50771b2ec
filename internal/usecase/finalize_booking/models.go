package finalize_booking

// Request confirms the payment of a booking, optionally redeeming reward
// points
type Request struct {
	UserID       int64
	BookingID    int64
	RedeemPoints int
}

// Response is the settlement result
type Response struct {
	BookingID      int64
	ReceiptRef     string
	Amount         float64
	Discount       float64
	FinalAmount    float64
	PointsRedeemed int
	PointsEarned   int
	PointsBalance  int
}
