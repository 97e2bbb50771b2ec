package extend_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Lingges29/mypark/internal/api/handlers"
	"github.com/Lingges29/mypark/internal/api/middleware"
	extendBooking "github.com/Lingges29/mypark/internal/usecase/extend_booking"
)

const (
	msgInvalidBookingID   = "invalid booking ID"
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "missing user ID"
	msgNotFound           = "booking not found"
	msgForbidden          = "booking does not belong to the user"
	msgInvalidInput       = "invalid extension parameters"
)

type Handler struct {
	useCase ExtendBookingUseCase
	logger  Logger
}

func NewHandler(useCase ExtendBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/extend
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/extend - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/extend - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ExtendBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/extend - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &extendBooking.Request{
		UserID:    userID,
		BookingID: bookingID,
		Units:     req.Units,
	})
	if err != nil {
		switch {
		case errors.Is(err, extendBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/extend - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, extendBooking.ErrBookingNotOwned):
			h.logger.Warn("POST /bookings/{id}/extend - Access denied: booking_id=%d, user_id=%d",
				bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, extendBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/extend - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/{id}/extend - Failed to extend booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/extend - Booking extended: booking_id=%d, new_end=%s",
		result.ID, result.EndTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
