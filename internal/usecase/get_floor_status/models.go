package get_floor_status

import (
	"time"

	"github.com/Lingges29/mypark/internal/domain"
)

// Request asks for the state of every slot on a floor as seen by a user
type Request struct {
	UserID int64
	Floor  int
}

// SlotState is one slot's classification
type SlotState struct {
	SlotID        string
	Status        domain.SlotStatus
	Color         string
	ReservedFrom  *time.Time
	ReservedUntil *time.Time
}

// Response lists the floor's slots in natural slot order
type Response struct {
	Floor int
	Slots []SlotState
}
