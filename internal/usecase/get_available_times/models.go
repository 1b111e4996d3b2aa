package get_available_times

import (
	"time"

	"github.com/annecarv/barber-schedule/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BarberID  int64     // ID мастера
	ServiceID int64     // ID услуги (определяет длительность слота)
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	BarberID  int64              // ID мастера
	ServiceID int64              // ID услуги
	Date      time.Time          // Дата, на которую запрашивались слоты
	Times     []types.TimeString // Доступные времена начала, по возрастанию
}
