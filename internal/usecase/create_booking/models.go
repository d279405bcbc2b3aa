package create_booking

import (
	"time"

	"github.com/agendafacil/booking-service/internal/domain"
	"github.com/agendafacil/booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CompanyID      int64           // ID компании
	CustomerID     int64           // ID клиента (из заголовка аутентификации)
	ProfessionalID int64           // ID мастера
	ServiceID      int64           // ID услуги
	BookingDate    time.Time       // Дата бронирования (без времени)
	StartTime      types.TimeOfDay // Время начала
	CustomerNotes  *string         // Комментарий клиента (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}
