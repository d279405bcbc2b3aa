package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agendafacil/booking-service/internal/domain"
	companyRepo "github.com/agendafacil/booking-service/internal/infra/storage/company"
	"github.com/agendafacil/booking-service/internal/service/settings/models"
	"github.com/agendafacil/booking-service/pkg/types"
)

// Service сервис для работы с настройками бронирования компании
type Service struct {
	companyRepo CompanyRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(companyRepo CompanyRepository, logger Logger) *Service {
	return &Service{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

// Get получает настройки бронирования компании
// Публичный метод - используется страницей бронирования
func (s *Service) Get(ctx context.Context, companyID int64) (*models.SettingsResponse, error) {
	s.logger.Info("Get: fetching settings for company=%d", companyID)

	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, companyRepo.ErrCompanyNotFound) {
			s.logger.Warn("Get: company id=%d not found", companyID)
			return nil, ErrCompanyNotFound
		}
		s.logger.Error("Get: repository error for company id=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched settings for company=%d", companyID)
	return models.FromDomainCompany(company), nil
}

// Update обновляет настройки бронирования компании
// Поддерживает частичное обновление - обновляются только указанные поля
// Доступно только владельцу компании
func (s *Service) Update(ctx context.Context, companyID int64, userID int64, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating settings for company=%d by user=%d", companyID, userID)

	// 1. Получаем текущие настройки
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, companyRepo.ErrCompanyNotFound) {
			s.logger.Warn("Update: company id=%d not found", companyID)
			return nil, ErrCompanyNotFound
		}
		s.logger.Error("Update: repository error for company id=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// 2. Настройки меняет только владелец
	if company.OwnerID != userID {
		s.logger.Warn("Update: user=%d is not the owner of company=%d", userID, companyID)
		return nil, ErrAccessDenied
	}

	// 3. Применяем обновления
	if err := s.applyUpdates(company, req); err != nil {
		s.logger.Warn("Update: invalid settings for company=%d: %v", companyID, err)
		return nil, err
	}

	// 4. Валидируем итоговые настройки целиком
	if err := s.validateSettings(company); err != nil {
		s.logger.Warn("Update: validation failed for company=%d: %v", companyID, err)
		return nil, err
	}

	// 5. Сохраняем
	updated, err := s.companyRepo.UpdateBookingSettings(ctx, companyID, company)
	if err != nil {
		if errors.Is(err, companyRepo.ErrCompanyNotFound) {
			s.logger.Warn("Update: company id=%d not found during update", companyID)
			return nil, ErrCompanyNotFound
		}
		s.logger.Error("Update: repository error for company id=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated settings for company=%d", companyID)
	return models.FromDomainCompany(updated), nil
}

// applyUpdates применяет непустые поля запроса к настройкам компании
func (s *Service) applyUpdates(company *domain.Company, req *models.UpdateSettingsRequest) error {
	if req.WorkingStartTime != nil {
		start, err := types.ParseTimeOfDay(*req.WorkingStartTime)
		if err != nil {
			return fmt.Errorf("%w: workingStartTime: %v", ErrInvalidInput, err)
		}
		company.WorkingStartTime = start
	}

	if req.WorkingEndTime != nil {
		end, err := types.ParseTimeOfDay(*req.WorkingEndTime)
		if err != nil {
			return fmt.Errorf("%w: workingEndTime: %v", ErrInvalidInput, err)
		}
		company.WorkingEndTime = end
	}

	if req.BookingIntervalMinutes != nil {
		company.BookingIntervalMinutes = *req.BookingIntervalMinutes
	}

	if req.BookingAdvanceDays != nil {
		company.BookingAdvanceDays = *req.BookingAdvanceDays
	}

	if req.CancellationHours != nil {
		company.CancellationHours = *req.CancellationHours
	}

	if req.Timezone != nil {
		company.Timezone = *req.Timezone
	}

	return nil
}

// validateSettings валидирует настройки бронирования
func (s *Service) validateSettings(company *domain.Company) error {
	// Рабочее окно должно быть непустым
	if !company.WorkingStartTime.Before(company.WorkingEndTime) {
		return fmt.Errorf("%w: working window must be a non-empty range", ErrInvalidInput)
	}

	if !domain.IsAllowedBookingInterval(company.BookingIntervalMinutes) {
		return fmt.Errorf("%w: bookingIntervalMinutes must be one of %v", ErrInvalidInput, domain.AllowedBookingIntervals)
	}

	if company.BookingAdvanceDays < domain.MinBookingAdvanceDays || company.BookingAdvanceDays > domain.MaxBookingAdvanceDays {
		return fmt.Errorf("%w: bookingAdvanceDays must be between %d and %d",
			ErrInvalidInput, domain.MinBookingAdvanceDays, domain.MaxBookingAdvanceDays)
	}

	if company.CancellationHours < domain.MinCancellationHours || company.CancellationHours > domain.MaxCancellationHours {
		return fmt.Errorf("%w: cancellationHours must be between %d and %d",
			ErrInvalidInput, domain.MinCancellationHours, domain.MaxCancellationHours)
	}

	if company.Timezone != "" {
		if _, err := time.LoadLocation(company.Timezone); err != nil {
			return fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, company.Timezone)
		}
	}

	return nil
}
