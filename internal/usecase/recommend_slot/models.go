package recommend_slot

// Response is the recommended slot
type Response struct {
	SlotID string
	Floor  int
	Usage  int
}
