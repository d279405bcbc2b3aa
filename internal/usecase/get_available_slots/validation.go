package get_available_slots

import (
	"fmt"
	"time"

	"github.com/agendafacil/booking-service/internal/domain"
	"github.com/agendafacil/booking-service/pkg/types"
)

// validateRequest валидирует запрос на получение слотов
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: company ID must be positive, got %d", ErrInvalidInput, req.CompanyID)
	}

	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professional ID must be positive, got %d", ErrInvalidInput, req.ProfessionalID)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: service ID must be positive, got %d", ErrInvalidInput, req.ServiceID)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшней (по календарю)
func isDateInPast(date, now time.Time) bool {
	today := truncateToDay(now)
	return truncateToDay(date).Before(today)
}

// isDateBeyondHorizon проверяет, что дата дальше горизонта бронирования компании
func isDateBeyondHorizon(date, now time.Time, advanceDays int) bool {
	horizon := truncateToDay(now).AddDate(0, 0, advanceDays)
	return truncateToDay(date).After(horizon)
}

// isSameDay проверяет, что запрошенная дата - сегодня
func isSameDay(date, now time.Time) bool {
	return truncateToDay(date).Equal(truncateToDay(now))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// markPastSlots помечает недоступными слоты сегодняшнего дня,
// начинающиеся раньше, чем now + minAdvanceHours
func markPastSlots(slots []domain.Slot, now time.Time, minAdvanceHours int) {
	cutoff := now.Add(time.Duration(minAdvanceHours) * time.Hour)

	// Минимальное время записи переносит отсечку на следующий день -
	// все сегодняшние слоты недоступны
	if !isSameDay(cutoff, now) {
		for i := range slots {
			slots[i].Available = false
		}
		return
	}

	// Отсечка округляется вверх до минуты: слот, начинающийся в минуту
	// отсечки с ненулевыми секундами, на записи будет отклонен
	// проверкой полного timestamp
	cutoffMinutes := cutoff.Hour()*60 + cutoff.Minute()
	if cutoff.Second() > 0 || cutoff.Nanosecond() > 0 {
		cutoffMinutes++
	}

	cutoffTime, err := types.TimeOfDayFromMinutes(cutoffMinutes)
	if err != nil {
		// Округление перешагнуло полночь - сегодняшних слотов не осталось
		for i := range slots {
			slots[i].Available = false
		}
		return
	}

	for i := range slots {
		if slots[i].Start.Before(cutoffTime) {
			slots[i].Available = false
		}
	}
}
