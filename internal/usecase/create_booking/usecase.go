package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agendafacil/booking-service/internal/domain"
	companyRepo "github.com/agendafacil/booking-service/internal/infra/storage/company"
	serviceRepo "github.com/agendafacil/booking-service/internal/infra/storage/service"
	"github.com/agendafacil/booking-service/internal/schedule"
	"github.com/agendafacil/booking-service/pkg/ptr"
	"github.com/agendafacil/booking-service/pkg/types"
)

// UseCase use case для создания бронирования
// Защита от двойного бронирования: проверка конфликта и вставка выполняются
// в одной сериализуемой транзакции, перечитывание занятых интервалов идет
// с блокировкой строк. Из двух конкурентных запросов на один слот ровно
// один завершается успехом
type UseCase struct {
	bookingRepo  BookingRepository
	companyRepo  CompanyRepository
	serviceRepo  ServiceRepository
	txManager    TxManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	companyRepo CompanyRepository,
	serviceRepo ServiceRepository,
	txManager TxManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		companyRepo:  companyRepo,
		serviceRepo:  serviceRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: company=%d, customer=%d, professional=%d, service=%d, date=%s, start=%s",
		req.CompanyID, req.CustomerID, req.ProfessionalID, req.ServiceID,
		req.BookingDate.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем компанию
	company, err := uc.companyRepo.GetByID(ctx, req.CompanyID)
	if err != nil {
		if errors.Is(err, companyRepo.ErrCompanyNotFound) {
			uc.logger.Warn("CreateBooking: company id=%d not found", req.CompanyID)
			return nil, ErrCompanyNotFound
		}
		uc.logger.Error("CreateBooking: failed to get company id=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to get company: %v", ErrInternal, err)
	}

	if !company.IsActive {
		uc.logger.Warn("CreateBooking: company id=%d is inactive", req.CompanyID)
		return nil, ErrCompanyNotFound
	}

	// 3. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.CompanyID, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.IsActive {
		uc.logger.Warn("CreateBooking: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 4. Проверяем дату и время слота относительно настроек компании
	now := uc.timeProvider.Now().In(company.Location())

	if err := uc.checkBookingWindow(req, company, service, now); err != nil {
		uc.logger.Warn("CreateBooking: booking window check failed: %v", err)
		return nil, err
	}

	// 5. Занимаемый интервал: длительность услуги плюс буферное время
	occupied, err := occupiedInterval(req.StartTime, service)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid slot interval: %v", err)
		return nil, err
	}

	// 6. Слот должен помещаться в рабочее окно компании
	if err := uc.checkWorkingHours(req.StartTime, service, company); err != nil {
		uc.logger.Warn("CreateBooking: working hours check failed: %v", err)
		return nil, err
	}

	// 7. Проверка конфликта и вставка в одной сериализуемой транзакции
	var created *domain.Booking

	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Перечитываем активные бронирования мастера на эту дату
		// с блокировкой строк
		filter := domain.CompanyBookingsFilter{
			CompanyID:       req.CompanyID,
			ProfessionalID:  ptr.Ptr(req.ProfessionalID),
			StartDate:       ptr.Ptr(req.BookingDate),
			EndDate:         ptr.Ptr(req.BookingDate),
			IncludeInactive: false,
		}

		bookings, err := uc.bookingRepo.GetByCompanyWithFilter(txCtx, filter)
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		existing := make([]types.TimeRange, 0, len(bookings))
		for _, b := range bookings {
			if !b.IsActive() {
				continue
			}
			interval, err := b.Interval()
			if err != nil {
				continue
			}
			existing = append(existing, interval)
		}

		// Хранимые интервалы уже включают буфер, поэтому достаточно
		// проверки пересечения полуинтервалов
		if schedule.HasConflict(occupied, existing) {
			return ErrSlotNotAvailable
		}

		booking := &domain.Booking{
			CompanyID:      req.CompanyID,
			CustomerID:     req.CustomerID,
			ProfessionalID: req.ProfessionalID,
			ServiceID:      req.ServiceID,
			BookingDate:    req.BookingDate,
			StartTime:      occupied.Start,
			EndTime:        occupied.End,
			Status:         domain.StatusPending,
			ServiceName:    service.Name,
			OriginalPrice:  service.Price,
			FinalPrice:     service.Price,
			CustomerNotes:  req.CustomerNotes,
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})

	if txErr != nil {
		if errors.Is(txErr, ErrSlotNotAvailable) {
			uc.logger.Warn("CreateBooking: slot %s on %s is already taken (professional=%d)",
				req.StartTime, req.BookingDate.Format(domain.DateFormat), req.ProfessionalID)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", txErr)
		if errors.Is(txErr, ErrInternal) {
			return nil, txErr
		}
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, txErr)
	}

	uc.logger.Info("CreateBooking: booking id=%d created (company=%d, professional=%d, date=%s, interval=%s-%s)",
		created.ID, created.CompanyID, created.ProfessionalID,
		created.BookingDate.Format(domain.DateFormat), created.StartTime, created.EndTime)

	return &Response{Booking: created}, nil
}

// checkBookingWindow проверяет дату бронирования относительно текущего
// времени, горизонта бронирования и минимального времени записи
func (uc *UseCase) checkBookingWindow(req *Request, company *domain.Company, service *domain.Service, now time.Time) error {
	bookingDay := truncateToDay(req.BookingDate)
	today := truncateToDay(now)

	if bookingDay.Before(today) {
		return ErrInvalidDate
	}

	horizon := today.AddDate(0, 0, company.BookingAdvanceDays)
	if bookingDay.After(horizon) {
		return ErrDateTooFarInFuture
	}

	// Начало слота как полный timestamp в таймзоне компании
	startsAt := time.Date(
		req.BookingDate.Year(), req.BookingDate.Month(), req.BookingDate.Day(),
		req.StartTime.Hour(), req.StartTime.Minute(), 0, 0, company.Location(),
	)

	minNotice := time.Duration(service.MinAdvanceBookingHours) * time.Hour
	if startsAt.Before(now.Add(minNotice)) {
		return ErrTooLateToBook
	}

	return nil
}

// checkWorkingHours проверяет, что услуга (без буфера) помещается
// в рабочее окно компании. Буфер может выходить за закрытие: это мертвое
// время мастера, а не клиентское
func (uc *UseCase) checkWorkingHours(start types.TimeOfDay, service *domain.Service, company *domain.Company) error {
	window, err := company.WorkingWindow()
	if err != nil {
		return ErrOutsideWorkingHours
	}

	nominalEnd, err := start.AddMinutes(service.DurationMinutes)
	if err != nil {
		return ErrOutsideWorkingHours
	}

	if start.Before(window.Start) || window.End.Before(nominalEnd) {
		return ErrOutsideWorkingHours
	}

	return nil
}

// occupiedInterval строит занимаемый интервал слота: [start, start+duration+buffer)
func occupiedInterval(start types.TimeOfDay, service *domain.Service) (types.TimeRange, error) {
	end, err := start.AddMinutes(service.TotalDuration())
	if err != nil {
		return types.TimeRange{}, fmt.Errorf("%w: slot does not fit in the day: %v", ErrOutsideWorkingHours, err)
	}
	return types.NewTimeRange(start, end)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
