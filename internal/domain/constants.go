package domain

// Business validation constants, carried over from the product rules
const (
	MinServiceDurationMinutes = 15
	MaxServiceDurationMinutes = 480 // 8 hours

	MinBufferTimeMinutes = 0
	MaxBufferTimeMinutes = 60

	MinBookingAdvanceDays = 1
	MaxBookingAdvanceDays = 365

	MinCancellationHours = 0
	MaxCancellationHours = 48

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// AllowedBookingIntervals допустимые значения шага сетки слотов
var AllowedBookingIntervals = []int{15, 30, 60}

// IsAllowedBookingInterval проверяет, что шаг сетки слотов допустим
func IsAllowedBookingInterval(minutes int) bool {
	for _, v := range AllowedBookingIntervals {
		if v == minutes {
			return true
		}
	}
	return false
}

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не блокирующих временные слоты
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}

// validStatuses все допустимые статусы бронирования
var validStatuses = map[BookingStatus]struct{}{
	StatusPending:    {},
	StatusConfirmed:  {},
	StatusInProgress: {},
	StatusCompleted:  {},
	StatusCancelled:  {},
	StatusNoShow:     {},
}

// IsValidStatus проверяет, что статус входит в допустимый набор
func IsValidStatus(s BookingStatus) bool {
	_, ok := validStatuses[s]
	return ok
}
