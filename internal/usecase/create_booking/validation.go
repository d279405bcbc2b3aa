package create_booking

import (
	"fmt"

	"github.com/agendafacil/booking-service/internal/domain"
)

// validateRequest валидирует запрос на создание бронирования
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: company ID must be positive, got %d", ErrInvalidInput, req.CompanyID)
	}

	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customer ID must be positive, got %d", ErrInvalidInput, req.CustomerID)
	}

	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professional ID must be positive, got %d", ErrInvalidInput, req.ProfessionalID)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: service ID must be positive, got %d", ErrInvalidInput, req.ServiceID)
	}

	if req.BookingDate.IsZero() {
		return fmt.Errorf("%w: booking date is required", ErrInvalidInput)
	}

	if req.CustomerNotes != nil && len(*req.CustomerNotes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: customer notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
