package get_available_times

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/annecarv/barber-schedule/internal/api/handlers"
	getAvailableTimes "github.com/annecarv/barber-schedule/internal/usecase/get_available_times"
)

const (
	msgMissingBarberID  = "параметр barber_id обязателен"
	msgInvalidBarberID  = "некорректный ID мастера"
	msgMissingServiceID = "параметр service_id обязателен"
	msgInvalidServiceID = "некорректный ID услуги"
	msgMissingDate      = "параметр date обязателен"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	useCase GetAvailableTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/available-times
// Query params: barber_id (required), date (required, YYYY-MM-DD), service_id (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Извлекаем barber_id из query параметров
	barberIDStr := query.Get("barber_id")
	if barberIDStr == "" {
		h.logger.Warn("GET /bookings/available-times - Missing barber ID")
		handlers.RespondBadRequest(w, msgMissingBarberID)
		return
	}

	barberID, err := strconv.ParseInt(barberIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/available-times - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	// Извлекаем service_id из query параметров
	serviceIDStr := query.Get("service_id")
	if serviceIDStr == "" {
		h.logger.Warn("GET /bookings/available-times - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/available-times - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /bookings/available-times - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(barberID, serviceID, dateStr)
	if err != nil {
		h.logger.Warn("GET /bookings/available-times - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableTimes.ErrServiceNotFound):
			h.logger.Warn("GET /bookings/available-times - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableTimes.ErrInvalidInput):
			h.logger.Warn("GET /bookings/available-times - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /bookings/available-times - Failed to get times: barber_id=%d, service_id=%d, error=%v",
				barberID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/available-times - Returned %d slots: barber_id=%d, date=%s",
		len(result.Times), barberID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
