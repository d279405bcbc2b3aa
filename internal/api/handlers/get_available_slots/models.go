package get_available_slots

import (
	"time"

	"github.com/agendafacil/booking-service/internal/domain"
	getAvailableSlots "github.com/agendafacil/booking-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date           string          `json:"date"`
	CompanyID      int64           `json:"companyId"`
	ProfessionalID int64           `json:"professionalId"`
	ServiceID      int64           `json:"serviceId"`
	Slots          []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:00"
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
// По умолчанию недоступные слоты отфильтровываются, includeUnavailable=true
// возвращает полную сетку с флагами
func FromUseCaseResponse(resp *getAvailableSlots.Response, includeUnavailable bool) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		if !slot.Available && !includeUnavailable {
			continue
		}
		slots = append(slots, AvailableSlot{
			StartTime: slot.Start.String(),
			EndTime:   slot.End.String(),
			Available: slot.Available,
		})
	}

	return &AvailableSlotsResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		CompanyID:      resp.CompanyID,
		ProfessionalID: resp.ProfessionalID,
		ServiceID:      resp.ServiceID,
		Slots:          slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров маршрута
func ToUseCaseRequest(companyID, professionalID, serviceID int64, dateStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		CompanyID:      companyID,
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
		Date:           date,
	}, nil
}
