package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendafacil/booking-service/internal/domain"
	companyRepo "github.com/agendafacil/booking-service/internal/infra/storage/company"
	serviceRepo "github.com/agendafacil/booking-service/internal/infra/storage/service"
	"github.com/agendafacil/booking-service/internal/schedule"
	"github.com/agendafacil/booking-service/pkg/ptr"
	"github.com/agendafacil/booking-service/pkg/types"
)

// UseCase use case для получения слотов для бронирования
// Чистое чтение без побочных эффектов: повторный вызов без записей
// между ними возвращает идентичный результат
type UseCase struct {
	bookingRepo  BookingRepository
	companyRepo  CompanyRepository
	serviceRepo  ServiceRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	companyRepo CompanyRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		companyRepo:  companyRepo,
		serviceRepo:  serviceRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
// Бизнес-причины отсутствия слотов (всё занято, выходной, дата в прошлом,
// дата дальше горизонта бронирования) — не ошибки: возвращается пустой список
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: company=%d, professional=%d, service=%d, date=%s",
		req.CompanyID, req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем компанию
	company, err := uc.companyRepo.GetByID(ctx, req.CompanyID)
	if err != nil {
		if errors.Is(err, companyRepo.ErrCompanyNotFound) {
			uc.logger.Warn("GetAvailableSlots: company id=%d not found", req.CompanyID)
			return nil, ErrCompanyNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get company id=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to get company: %v", ErrInternal, err)
	}

	// Неактивная компания неотличима от несуществующей
	if !company.IsActive {
		uc.logger.Warn("GetAvailableSlots: company id=%d is inactive", req.CompanyID)
		return nil, ErrCompanyNotFound
	}

	// 3. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.CompanyID, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.IsActive {
		uc.logger.Warn("GetAvailableSlots: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 4. Текущее время в таймзоне компании
	now := uc.timeProvider.Now().In(company.Location())

	// 5. Дата в прошлом или дальше горизонта бронирования - слотов нет
	if isDateInPast(req.Date, now) || isDateBeyondHorizon(req.Date, now, company.BookingAdvanceDays) {
		uc.logger.Info("GetAvailableSlots: date %s outside booking horizon", req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req), nil
	}

	// 6. Рабочее окно компании
	window, err := company.WorkingWindow()
	if err != nil {
		// Вырожденное окно (open >= close) означает, что компания не принимает записи
		uc.logger.Warn("GetAvailableSlots: company id=%d has degenerate working window: %v", req.CompanyID, err)
		return uc.emptyResponse(req), nil
	}

	// 7. Получаем активные бронирования мастера на эту дату
	filter := domain.CompanyBookingsFilter{
		CompanyID:       req.CompanyID,
		ProfessionalID:  ptr.Ptr(req.ProfessionalID),
		StartDate:       ptr.Ptr(req.Date),
		EndDate:         ptr.Ptr(req.Date),
		IncludeInactive: false, // Только активные бронирования
	}

	bookings, err := uc.bookingRepo.GetByCompanyWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	existing := activeIntervals(bookings)

	// 8. Строим сетку слотов с флагами доступности
	slots := schedule.BuildSlots(
		window,
		service.DurationMinutes,
		service.BufferTimeMinutes,
		company.BookingIntervalMinutes,
		existing,
	)

	// 9. Для сегодняшней даты слоты, начинающиеся раньше минимального
	// времени до записи, помечаются недоступными
	if isSameDay(req.Date, now) {
		markPastSlots(slots, now, service.MinAdvanceBookingHours)
	}

	uc.logger.Info("GetAvailableSlots: built %d slots for company=%d, professional=%d, service=%d, date=%s",
		len(slots), req.CompanyID, req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:           req.Date,
		CompanyID:      req.CompanyID,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		Slots:          slots,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request) *Response {
	return &Response{
		Date:           req.Date,
		CompanyID:      req.CompanyID,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		Slots:          []domain.Slot{},
	}
}

// activeIntervals собирает занятые интервалы активных бронирований
func activeIntervals(bookings []*domain.Booking) []types.TimeRange {
	intervals := make([]types.TimeRange, 0, len(bookings))
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		interval, err := b.Interval()
		if err != nil {
			// Некорректный интервал в хранилище пропускаем
			continue
		}
		intervals = append(intervals, interval)
	}
	return intervals
}
