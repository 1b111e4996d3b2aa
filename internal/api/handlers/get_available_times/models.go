package get_available_times

import (
	"time"

	"github.com/annecarv/barber-schedule/internal/domain"
	getAvailableTimes "github.com/annecarv/barber-schedule/internal/usecase/get_available_times"
)

// AvailableTimesResponse HTTP response model
type AvailableTimesResponse struct {
	AvailableTimes []string `json:"available_times"`
}

// ToUseCaseRequest конвертирует query параметры в модель use case
func ToUseCaseRequest(barberID, serviceID int64, dateStr string) (*getAvailableTimes.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableTimes.Request{
		BarberID:  barberID,
		ServiceID: serviceID,
		Date:      date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableTimes.Response) *AvailableTimesResponse {
	times := make([]string, 0, len(resp.Times))
	for _, t := range resp.Times {
		times = append(times, t.String())
	}

	return &AvailableTimesResponse{AvailableTimes: times}
}
