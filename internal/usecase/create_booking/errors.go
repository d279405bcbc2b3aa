package create_booking

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда компания не найдена или неактивна
	ErrCompanyNotFound = errors.New("create_booking: company not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrSlotNotAvailable возвращается, когда запрошенный слот пересекается
	// с существующим активным бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidDate возвращается при попытке бронирования на прошедшую дату
	ErrInvalidDate = errors.New("create_booking: booking date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата дальше горизонта
	// бронирования компании
	ErrDateTooFarInFuture = errors.New("create_booking: booking date is beyond the advance window")

	// ErrTooLateToBook возвращается, когда до начала слота осталось меньше
	// минимального времени записи услуги
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrOutsideWorkingHours возвращается, когда слот не помещается
	// в рабочее окно компании
	ErrOutsideWorkingHours = errors.New("create_booking: slot is outside working hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
