package create_booking

import (
	"errors"
	"net/http"

	"github.com/Lingges29/mypark/internal/api/handlers"
	"github.com/Lingges29/mypark/internal/api/middleware"
	createBooking "github.com/Lingges29/mypark/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTime        = "invalid time format, RFC 3339 expected"
	msgMissingUserID      = "missing user ID"
	msgSlotConflict       = "slot already booked for the selected time"
	msgSlotNotFound       = "slot not found"
	msgVehicleNotFound    = "vehicle not found"
	msgVehicleNotOwned    = "vehicle does not belong to the user"
	msgInvalidInput       = "invalid booking parameters"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request times: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: user_id=%d, slot_id=%s", userID, req.SlotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: slot_id=%s", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrVehicleNotFound):
			h.logger.Warn("POST /bookings - Vehicle not found: vehicle_id=%d", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, createBooking.ErrVehicleNotOwned):
			h.logger.Warn("POST /bookings - Vehicle not owned: user_id=%d, vehicle_id=%d", userID, req.VehicleID)
			handlers.RespondForbidden(w, msgVehicleNotOwned)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, slot_id=%s, error=%v",
				userID, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user_id=%d, slot_id=%s",
		result.ID, userID, result.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
