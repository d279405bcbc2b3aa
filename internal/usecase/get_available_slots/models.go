package get_available_slots

import (
	"time"

	"github.com/agendafacil/booking-service/internal/domain"
)

// Request модель запроса на получение слотов
type Request struct {
	CompanyID      int64     // ID компании
	ProfessionalID int64     // ID мастера
	ServiceID      int64     // ID услуги
	Date           time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов
// Slots покрывает всё рабочее окно: недоступные слоты помечены
// Available=false, фильтрация — решение транспортного слоя
type Response struct {
	Date           time.Time     // Дата, на которую запрашивались слоты
	CompanyID      int64         // ID компании
	ProfessionalID int64         // ID мастера
	ServiceID      int64         // ID услуги
	Slots          []domain.Slot // Все слоты рабочего окна с флагом доступности
}
