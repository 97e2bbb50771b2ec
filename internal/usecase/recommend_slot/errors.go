package recommend_slot

import "errors"

var (
	// ErrNoSlotAvailable is returned when every slot has an active booking
	ErrNoSlotAvailable = errors.New("recommend_slot: no slot available")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("recommend_slot: internal error")
)
