package finalize_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Lingges29/mypark/internal/api/handlers"
	"github.com/Lingges29/mypark/internal/api/middleware"
	finalizeBooking "github.com/Lingges29/mypark/internal/usecase/finalize_booking"
)

const (
	msgInvalidBookingID   = "invalid booking ID"
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "missing user ID"
	msgNotFound           = "booking not found"
	msgForbidden          = "booking does not belong to the user"
	msgAlreadyFinalized   = "booking already finalized"
	msgInvalidInput       = "invalid finalization parameters"
)

type Handler struct {
	useCase FinalizeBookingUseCase
	logger  Logger
}

func NewHandler(useCase FinalizeBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/finalize
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/finalize - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/finalize - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req FinalizeBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/finalize - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &finalizeBooking.Request{
		UserID:       userID,
		BookingID:    bookingID,
		RedeemPoints: req.RedeemPoints,
	})
	if err != nil {
		switch {
		case errors.Is(err, finalizeBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/finalize - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, finalizeBooking.ErrBookingNotOwned):
			h.logger.Warn("POST /bookings/{id}/finalize - Access denied: booking_id=%d, user_id=%d",
				bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, finalizeBooking.ErrAlreadyFinalized):
			h.logger.Warn("POST /bookings/{id}/finalize - Already finalized: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyFinalized)

		case errors.Is(err, finalizeBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/finalize - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/{id}/finalize - Failed to finalize booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/finalize - Booking finalized: booking_id=%d, final=%.2f",
		result.BookingID, result.FinalAmount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
