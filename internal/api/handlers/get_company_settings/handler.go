package get_company_settings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/agendafacil/booking-service/internal/api/handlers"
	"github.com/agendafacil/booking-service/internal/service/settings"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
	msgNotFound         = "компания не найдена"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем companyId из URL
	vars := mux.Vars(r)
	companyIDStr := vars["companyId"]

	companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/settings - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	// Получаем настройки бронирования
	result, err := h.service.Get(r.Context(), companyID)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrCompanyNotFound):
			h.logger.Warn("GET /companies/{id}/settings - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /companies/{id}/settings - Failed to get settings: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /companies/{id}/settings - Settings retrieved successfully: company_id=%d", companyID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
