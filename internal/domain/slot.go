package domain

// Slot represents a physical parking space. Slots are created once at
// system initialization and never change afterwards.
type Slot struct {
	ID    string
	Floor int
}

// SlotStatus is the display state of a slot at a given instant for a
// given viewer
type SlotStatus string

const (
	// StatusBooked - some booking covers the evaluation instant, shown
	// identically to every viewer
	StatusBooked SlotStatus = "booked"

	// StatusFuture - no active booking, but the viewing user holds a
	// future booking on the slot; other viewers see the slot as available
	StatusFuture SlotStatus = "future"

	// StatusAvailable - neither of the above
	StatusAvailable SlotStatus = "available"
)

// Color returns the UI color conventionally attached to the status
func (s SlotStatus) Color() string {
	switch s {
	case StatusBooked:
		return "red"
	case StatusFuture:
		return "yellow"
	default:
		return "green"
	}
}

// SlotUsage pairs a slot with its total historical booking count
type SlotUsage struct {
	SlotID string
	Floor  int
	Usage  int
}
