package cancel_booking

import (
	"github.com/agendafacil/booking-service/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(customerID int64) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		CustomerID:         customerID,
		CancellationReason: r.CancellationReason,
	}
}
