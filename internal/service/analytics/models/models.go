package models

// Bucket is one labelled count in a grouped series
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// SlotUsage is a slot with its historical booking count
type SlotUsage struct {
	SlotID string `json:"slotId"`
	Floor  int    `json:"floor"`
	Usage  int    `json:"usage"`
}

// Occupancy is the predicted load for the coming hour
type Occupancy struct {
	Percent float64 `json:"percent"`
	Level   string  `json:"level"`
}

// AnalyticsResponse is the admin analytics snapshot
type AnalyticsResponse struct {
	TotalSlots       int         `json:"totalSlots"`
	ActiveBookings   int         `json:"activeBookings"`
	BookedSlots      int         `json:"bookedSlots"`
	AvailableSlots   int         `json:"availableSlots"`
	TotalIncome      float64     `json:"totalIncome"`
	BookingsPerDay   []Bucket    `json:"bookingsPerDay"`
	BookingsPerMonth []Bucket    `json:"bookingsPerMonth"`
	BookingsPerHour  []Bucket    `json:"bookingsPerHour"`
	FloorUsage       []Bucket    `json:"floorUsage"`
	LeastUsedSlots   []SlotUsage `json:"leastUsedSlots"`
	PeakHours        string      `json:"peakHours"`
	NextHour         Occupancy   `json:"nextHourOccupancy"`
}
