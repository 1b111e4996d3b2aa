package create_barber

import (
	"errors"
	"net/http"

	"github.com/annecarv/barber-schedule/internal/api/handlers"
	"github.com/annecarv/barber-schedule/internal/service/barbers"
	"github.com/annecarv/barber-schedule/internal/service/barbers/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmailTaken         = "email уже зарегистрирован"
	msgInvalidInput       = "некорректные данные мастера"
)

type Handler struct {
	service BarberService
	logger  Logger
}

func NewHandler(service BarberService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/barbers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBarberRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /barbers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	barber, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, barbers.ErrEmailTaken):
			h.logger.Warn("POST /barbers - Email taken: email=%s", req.Email)
			handlers.RespondError(w, http.StatusConflict, msgEmailTaken)

		case errors.Is(err, barbers.ErrInvalidInput):
			h.logger.Warn("POST /barbers - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /barbers - Failed to create barber: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /barbers - Barber created successfully: barber_id=%d", barber.ID)
	handlers.RespondJSON(w, http.StatusCreated, barber)
}
