package get_floor_status

import (
	"time"

	getFloorStatus "github.com/Lingges29/mypark/internal/usecase/get_floor_status"
)

// SlotStateResponse is one slot's display state
type SlotStateResponse struct {
	SlotID        string  `json:"slotId"`
	Status        string  `json:"status"`
	Color         string  `json:"color"`
	ReservedFrom  *string `json:"reservedFrom,omitempty"`
	ReservedUntil *string `json:"reservedUntil,omitempty"`
}

// FloorStatusResponse HTTP response model
type FloorStatusResponse struct {
	Floor int                 `json:"floor"`
	Slots []SlotStateResponse `json:"slots"`
}

// FromUseCaseResponse converts the usecase response into the HTTP response
func FromUseCaseResponse(resp *getFloorStatus.Response) *FloorStatusResponse {
	slots := make([]SlotStateResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotStateResponse{
			SlotID:        s.SlotID,
			Status:        string(s.Status),
			Color:         s.Color,
			ReservedFrom:  formatTime(s.ReservedFrom),
			ReservedUntil: formatTime(s.ReservedUntil),
		})
	}

	return &FloorStatusResponse{Floor: resp.Floor, Slots: slots}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}
