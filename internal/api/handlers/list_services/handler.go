package list_services

import (
	"net/http"
	"strconv"

	"github.com/annecarv/barber-schedule/internal/api/handlers"
)

const msgInvalidActiveOnly = "некорректное значение параметра active_only"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
// Query params: active_only (опционально, по умолчанию true)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activeOnly := true
	if activeOnlyStr := r.URL.Query().Get("active_only"); activeOnlyStr != "" {
		parsed, err := strconv.ParseBool(activeOnlyStr)
		if err != nil {
			h.logger.Warn("GET /services - Invalid active_only: %v", err)
			handlers.RespondBadRequest(w, msgInvalidActiveOnly)
			return
		}
		activeOnly = parsed
	}

	result, err := h.service.List(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Returned %d services", len(result.Services))
	handlers.RespondJSON(w, http.StatusOK, result)
}
