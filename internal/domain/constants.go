package domain

import "time"

// Parking grid layout, fixed at initialization
const (
	TotalFloors   = 4
	SlotsPerFloor = 100
)

// Pricing: bookings are priced in half-hour units
const (
	SlotUnitMinutes  = 30
	PricePerUnit     = 2.5
	SlotUnitDuration = SlotUnitMinutes * time.Minute
)

// Reward points: 1 point earned per currency unit paid,
// 10 points redeem into 1 currency unit of discount
const (
	RedeemPointsPerUnit = 10
)

// Listing limits
const (
	RecentActivityLimit = 5
	UnderusedSlotsLimit = 5
)

// Time format constants
const (
	DateFormat  = "2006-01-02"
	MonthFormat = "2006-01"
)

// PriceForInterval computes the booking amount for [start, end): linear in
// elapsed half-hour units, fractional units priced proportionally
func PriceForInterval(start, end time.Time) float64 {
	return end.Sub(start).Minutes() / SlotUnitMinutes * PricePerUnit
}

// PriceForUnits computes the extension surcharge for a whole number of
// half-hour units
func PriceForUnits(units int) float64 {
	return float64(units) * PricePerUnit
}
