package get_company_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/agendafacil/booking-service/internal/domain"
	"github.com/agendafacil/booking-service/internal/service/bookings/models"
)

// queryParams сырые query параметры запроса
type queryParams struct {
	ProfessionalID  string
	CustomerID      string
	Status          string
	Date            string
	StartDate       string
	EndDate         string
	IncludeInactive string
}

// ToServiceRequest конвертирует query параметры в модель сервиса
// date задает один день, startDate/endDate - период; одновременно
// указывать нельзя
func ToServiceRequest(companyID int64, userID int64, params queryParams) (*models.GetCompanyBookingsRequest, error) {
	req := &models.GetCompanyBookingsRequest{
		CompanyID: companyID,
		UserID:    userID,
	}

	if params.ProfessionalID != "" {
		professionalID, err := strconv.ParseInt(params.ProfessionalID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid professionalId: %v", err)
		}
		req.ProfessionalID = &professionalID
	}

	if params.CustomerID != "" {
		customerID, err := strconv.ParseInt(params.CustomerID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid customerId: %v", err)
		}
		req.CustomerID = &customerID
	}

	if params.Status != "" {
		status := params.Status
		req.Status = &status
	}

	if params.Date != "" {
		if params.StartDate != "" || params.EndDate != "" {
			return nil, fmt.Errorf("date and startDate/endDate are mutually exclusive")
		}
		date, err := time.Parse(domain.DateFormat, params.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %v", err)
		}
		req.StartDate = &date
		req.EndDate = &date
	}

	if params.StartDate != "" {
		startDate, err := time.Parse(domain.DateFormat, params.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %v", err)
		}
		req.StartDate = &startDate
	}

	if params.EndDate != "" {
		endDate, err := time.Parse(domain.DateFormat, params.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %v", err)
		}
		req.EndDate = &endDate
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("endDate is before startDate")
	}

	req.IncludeInactive = params.IncludeInactive == "true"

	return req, nil
}
