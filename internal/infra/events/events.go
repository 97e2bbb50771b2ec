// Package events publishes booking domain events to Kafka. Consumers own
// receipt rendering and message delivery; the service only emits facts.
package events

import "time"

// BookingConfirmed is emitted once a booking's payment has been confirmed
type BookingConfirmed struct {
	EventID    string    `json:"event_id"`
	BookingID  int64     `json:"booking_id"`
	SlotID     string    `json:"slot_id"`
	UserID     int64     `json:"user_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Amount     float64   `json:"amount"`
	ReceiptRef string    `json:"receipt_ref"`
	OccurredAt time.Time `json:"occurred_at"`
}
