package recommend_slot

import (
	"errors"
	"net/http"

	"github.com/Lingges29/mypark/internal/api/handlers"
	recommendSlot "github.com/Lingges29/mypark/internal/usecase/recommend_slot"
)

const msgNoSlotAvailable = "no slot available"

// RecommendationResponse HTTP response model
type RecommendationResponse struct {
	SlotID string `json:"slotId"`
	Floor  int    `json:"floor"`
	Usage  int    `json:"usage"`
}

type Handler struct {
	useCase RecommendSlotUseCase
	logger  Logger
}

func NewHandler(useCase RecommendSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/recommendation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		if errors.Is(err, recommendSlot.ErrNoSlotAvailable) {
			h.logger.Warn("GET /slots/recommendation - No slot available")
			handlers.RespondNotFound(w, msgNoSlotAvailable)
			return
		}
		h.logger.Error("GET /slots/recommendation - Failed to recommend slot: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &RecommendationResponse{
		SlotID: result.SlotID,
		Floor:  result.Floor,
		Usage:  result.Usage,
	})
}
