package get_dashboard

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Lingges29/mypark/internal/api/handlers"
	"github.com/Lingges29/mypark/internal/api/middleware"
	"github.com/Lingges29/mypark/internal/service/bookings"
)

const (
	msgInvalidUserID = "invalid user ID"
	msgMissingUserID = "missing user ID"
	msgForbidden     = "access denied"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	pathUserID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/dashboard - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/dashboard - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if pathUserID != authUserID {
		h.logger.Warn("GET /users/{id}/dashboard - Access denied: path_user=%d, auth_user=%d",
			pathUserID, authUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.GetDashboard(r.Context(), pathUserID)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /users/{id}/dashboard - Invalid input: user_id=%d", pathUserID)
			handlers.RespondBadRequest(w, msgInvalidUserID)
			return
		}
		h.logger.Error("GET /users/{id}/dashboard - Failed to build dashboard: user_id=%d, error=%v",
			pathUserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
