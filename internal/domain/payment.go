package domain

import "time"

// Payment records a confirmed charge for a booking
type Payment struct {
	ID          int64
	BookingID   int64
	PaymentTime time.Time
}

// RedeemablePoints clamps the points a user asked to redeem: never more
// than the current balance, and only whole multiples of ten. The clamping
// is documented behavior, not an error.
func RedeemablePoints(requested, balance int) int {
	if requested < 0 {
		return 0
	}
	if requested > balance {
		return 0
	}
	return (requested / RedeemPointsPerUnit) * RedeemPointsPerUnit
}

// DiscountForPoints converts redeemed points into a currency discount
func DiscountForPoints(points int) float64 {
	return float64(points / RedeemPointsPerUnit)
}

// EarnedPoints computes reward points for a paid amount: one point per
// whole currency unit of the final charge
func EarnedPoints(finalAmount float64) int {
	if finalAmount < 0 {
		return 0
	}
	return int(finalAmount)
}
