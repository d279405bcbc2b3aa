package get_available_slots

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда компания не найдена или неактивна
	ErrCompanyNotFound = errors.New("get_available_slots: company not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
