package create_service

import (
	"errors"
	"net/http"

	"github.com/annecarv/barber-schedule/internal/api/handlers"
	"github.com/annecarv/barber-schedule/internal/service/catalog"
	"github.com/annecarv/barber-schedule/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDuration    = "некорректный код длительности, ожидается 30min | 1h | 1h30min"
	msgInvalidInput       = "некорректные данные услуги"
)

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

// Handle POST /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	service, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidDuration):
			h.logger.Warn("POST /services - Invalid duration: duration=%s", req.Duration)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /services - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /services - Failed to create service: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services - Service created successfully: service_id=%d", service.ID)
	handlers.RespondJSON(w, http.StatusCreated, service)
}
