package models

import (
	"time"

	"github.com/agendafacil/booking-service/internal/domain"
)

// Request модели

// UpdateSettingsRequest запрос на обновление настроек бронирования
// Все поля опциональны - обновляются только переданные значения
type UpdateSettingsRequest struct {
	WorkingStartTime       *string `json:"workingStartTime,omitempty"` // "09:00"
	WorkingEndTime         *string `json:"workingEndTime,omitempty"`   // "18:00"
	BookingIntervalMinutes *int    `json:"bookingIntervalMinutes,omitempty"`
	BookingAdvanceDays     *int    `json:"bookingAdvanceDays,omitempty"`
	CancellationHours      *int    `json:"cancellationHours,omitempty"`
	Timezone               *string `json:"timezone,omitempty"` // IANA, например "America/Sao_Paulo"
}

// Response модели

// SettingsResponse ответ с настройками бронирования компании
type SettingsResponse struct {
	CompanyID              int64     `json:"companyId"`
	Name                   string    `json:"name"`
	Slug                   string    `json:"slug"`
	WorkingStartTime       string    `json:"workingStartTime"`
	WorkingEndTime         string    `json:"workingEndTime"`
	BookingIntervalMinutes int       `json:"bookingIntervalMinutes"`
	BookingAdvanceDays     int       `json:"bookingAdvanceDays"`
	CancellationHours      int       `json:"cancellationHours"`
	Timezone               string    `json:"timezone"`
	IsActive               bool      `json:"isActive"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainCompany конвертирует domain модель в DTO настроек
func FromDomainCompany(c *domain.Company) *SettingsResponse {
	if c == nil {
		return nil
	}

	return &SettingsResponse{
		CompanyID:              c.ID,
		Name:                   c.Name,
		Slug:                   c.Slug,
		WorkingStartTime:       c.WorkingStartTime.String(),
		WorkingEndTime:         c.WorkingEndTime.String(),
		BookingIntervalMinutes: c.BookingIntervalMinutes,
		BookingAdvanceDays:     c.BookingAdvanceDays,
		CancellationHours:      c.CancellationHours,
		Timezone:               c.Timezone,
		IsActive:               c.IsActive,
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}
}
