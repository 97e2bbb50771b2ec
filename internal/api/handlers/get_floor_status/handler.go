package get_floor_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Lingges29/mypark/internal/api/handlers"
	"github.com/Lingges29/mypark/internal/api/middleware"
	getFloorStatus "github.com/Lingges29/mypark/internal/usecase/get_floor_status"
)

const (
	msgInvalidFloor  = "invalid floor"
	msgFloorNotFound = "floor not found"
	msgMissingUserID = "missing user ID"
)

type Handler struct {
	useCase GetFloorStatusUseCase
	logger  Logger
}

func NewHandler(useCase GetFloorStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/floors/{floor}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	floor, err := strconv.Atoi(mux.Vars(r)["floor"])
	if err != nil {
		h.logger.Warn("GET /floors/{floor}/slots - Invalid floor: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFloor)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /floors/{floor}/slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getFloorStatus.Request{
		UserID: userID,
		Floor:  floor,
	})
	if err != nil {
		if errors.Is(err, getFloorStatus.ErrFloorNotFound) {
			h.logger.Warn("GET /floors/{floor}/slots - Floor not found: floor=%d", floor)
			handlers.RespondNotFound(w, msgFloorNotFound)
			return
		}
		h.logger.Error("GET /floors/{floor}/slots - Failed to classify floor: floor=%d, error=%v", floor, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
