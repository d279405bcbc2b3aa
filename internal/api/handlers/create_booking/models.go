package create_booking

import (
	"time"

	"github.com/agendafacil/booking-service/internal/domain"
	createBooking "github.com/agendafacil/booking-service/internal/usecase/create_booking"
	"github.com/agendafacil/booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CompanyID      int64   `json:"companyId"`
	ProfessionalID int64   `json:"professionalId"`
	ServiceID      int64   `json:"serviceId"`
	BookingDate    string  `json:"bookingDate"` // "2025-10-15"
	StartTime      string  `json:"startTime"`   // "10:00"
	CustomerNotes  *string `json:"customerNotes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             int64   `json:"id"`
	CompanyID      int64   `json:"companyId"`
	CustomerID     int64   `json:"customerId"`
	ProfessionalID int64   `json:"professionalId"`
	ServiceID      int64   `json:"serviceId"`
	BookingDate    string  `json:"bookingDate"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Status         string  `json:"status"`
	ServiceName    string  `json:"serviceName"`
	OriginalPrice  float64 `json:"originalPrice"`
	FinalPrice     float64 `json:"finalPrice"`
	CustomerNotes  *string `json:"customerNotes,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(customerID int64) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CompanyID:      r.CompanyID,
		CustomerID:     customerID,
		ProfessionalID: r.ProfessionalID,
		ServiceID:      r.ServiceID,
		BookingDate:    bookingDate,
		StartTime:      startTime,
		CustomerNotes:  r.CustomerNotes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	b := resp.Booking

	return &BookingResponse{
		ID:             b.ID,
		CompanyID:      b.CompanyID,
		CustomerID:     b.CustomerID,
		ProfessionalID: b.ProfessionalID,
		ServiceID:      b.ServiceID,
		BookingDate:    b.BookingDate.Format(domain.DateFormat),
		StartTime:      b.StartTime.String(),
		EndTime:        b.EndTime.String(),
		Status:         string(b.Status),
		ServiceName:    b.ServiceName,
		OriginalPrice:  b.OriginalPrice,
		FinalPrice:     b.FinalPrice,
		CustomerNotes:  b.CustomerNotes,
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      b.UpdatedAt.Format(time.RFC3339),
	}
}
