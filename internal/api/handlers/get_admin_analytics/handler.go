package get_admin_analytics

import (
	"net/http"

	"github.com/Lingges29/mypark/internal/api/handlers"
)

type Handler struct {
	service AnalyticsService
	logger  Logger
}

func NewHandler(service AnalyticsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/analytics
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAnalytics(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/analytics - Failed to build analytics: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
