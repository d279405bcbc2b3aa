package update_company_settings

import (
	"github.com/agendafacil/booking-service/internal/service/settings/models"
)

// UpdateCompanySettingsRequest HTTP request model
// Все поля опциональны - частичное обновление
type UpdateCompanySettingsRequest struct {
	WorkingStartTime       *string `json:"workingStartTime,omitempty"`
	WorkingEndTime         *string `json:"workingEndTime,omitempty"`
	BookingIntervalMinutes *int    `json:"bookingIntervalMinutes,omitempty"`
	BookingAdvanceDays     *int    `json:"bookingAdvanceDays,omitempty"`
	CancellationHours      *int    `json:"cancellationHours,omitempty"`
	Timezone               *string `json:"timezone,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateCompanySettingsRequest) ToServiceRequest() *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{
		WorkingStartTime:       r.WorkingStartTime,
		WorkingEndTime:         r.WorkingEndTime,
		BookingIntervalMinutes: r.BookingIntervalMinutes,
		BookingAdvanceDays:     r.BookingAdvanceDays,
		CancellationHours:      r.CancellationHours,
		Timezone:               r.Timezone,
	}
}
