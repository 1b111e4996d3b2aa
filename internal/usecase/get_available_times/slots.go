package get_available_times

import (
	"github.com/annecarv/barber-schedule/internal/domain"
	"github.com/annecarv/barber-schedule/pkg/types"
)

// generateTimeSlots генерирует полную сетку кандидатов времени начала:
// от открытия (09:00) с шагом 30 минут, последний кандидат - 18:30.
// Фильтрация по занятости и длительности услуги выполняется отдельно.
func generateTimeSlots() []types.TimeString {
	slots := make([]types.TimeString, 0)
	current := domain.OpenTime

	for current.IsBefore(domain.CloseTime) {
		slots = append(slots, current)

		next, err := current.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return slots
}

// fitsBusinessHours проверяет, что слот целиком укладывается в рабочие часы:
// конец слота не позже закрытия. Для 90-минутной услуги 18:00 проходит
// (конец ровно 19:00), 18:30 - нет.
func fitsBusinessHours(slotStart types.TimeString, durationMinutes int) bool {
	slotEnd, err := slotStart.AddMinutes(durationMinutes)
	if err != nil {
		return false
	}
	return !slotEnd.IsAfter(domain.CloseTime)
}

// isSlotAvailable проверяет, что интервал [slotStart, slotStart+durationMinutes)
// не пересекается ни с одним неотменённым бронированием.
//
// Длительность каждого существующего бронирования разрешается из кода
// длительности ЕГО услуги (booking.DurationMinutes), а не фиксированным
// значением: часовая стрижка в 10:00 блокирует кандидата в 10:30.
//
// Пересечение - только строгое наложение интервалов: бронирование,
// заканчивающееся ровно в момент начала слота (или наоборот), не мешает.
// Предварительная фильтрация по мастеру и дате - ответственность вызывающего.
func isSlotAvailable(bookings []*domain.Booking, slotStart types.TimeString, durationMinutes int) bool {
	slotEnd, err := slotStart.AddMinutes(durationMinutes)
	if err != nil {
		return false
	}

	for _, booking := range bookings {
		// Отменённые бронирования никогда не блокируют слот
		if !booking.IsActive() {
			continue
		}

		bookingStart := booking.StartTime
		bookingEnd, err := bookingStart.AddMinutes(booking.DurationMinutes())
		if err != nil {
			// Некорректное время начала в данных - пропускаем запись
			continue
		}

		if bookingStart.IsBefore(slotEnd) && bookingEnd.IsAfter(slotStart) {
			return false
		}
	}

	return true
}
