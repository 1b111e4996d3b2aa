package create_booking

import (
	"time"

	"github.com/annecarv/barber-schedule/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerName  string           // Имя клиента
	CustomerEmail *string          // Email клиента (опционально)
	CustomerPhone *string          // Телефон клиента (опционально)
	ServiceID     int64            // ID услуги
	BarberID      int64            // ID мастера
	Date          time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Время начала (например, "10:00")
}

// Response модель ответа с созданным бронированием,
// обогащённая данными услуги и мастера
type Response struct {
	ID            int64
	CustomerName  string
	CustomerEmail *string
	CustomerPhone *string
	ServiceID     int64
	BarberID      int64
	Date          time.Time
	StartTime     types.TimeString
	Status        string

	// Данные услуги и мастера для отображения
	ServiceName     string
	ServiceDuration string
	ServicePrice    string
	BarberName      string

	CreatedAt time.Time
	UpdatedAt time.Time
}
