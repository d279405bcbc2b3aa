package domain

import (
	"time"

	"github.com/agendafacil/booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
	StatusNoShow     BookingStatus = "no_show"
)

// Booking represents a salon appointment in the system.
// StartTime/EndTime cover the occupied span of the professional's day:
// EndTime includes the service's buffer time, so conflict checks see
// the buffered interval on both read and write paths.
type Booking struct {
	ID             int64
	CompanyID      int64
	CustomerID     int64
	ProfessionalID int64
	ServiceID      int64
	BookingDate    time.Time
	StartTime      types.TimeOfDay
	EndTime        types.TimeOfDay
	Status         BookingStatus

	// Denormalized data, copied from the service at creation
	ServiceName   string
	OriginalPrice float64
	FinalPrice    float64

	CustomerNotes      *string
	InternalNotes      *string
	CancellationReason *string

	ConfirmedAt *time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking blocks its time interval.
// Completed bookings stay active and keep blocking overlapping slots
// for their date.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsFinished returns true if the booking reached a terminal state
func (b *Booking) IsFinished() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled || b.Status == StatusNoShow
}

// Interval returns the occupied time interval of the booking
func (b *Booking) Interval() (types.TimeRange, error) {
	return types.NewTimeRange(b.StartTime, b.EndTime)
}

// StartsAt returns the full timestamp of the booking start in loc
func (b *Booking) StartsAt(loc *time.Location) time.Time {
	return time.Date(
		b.BookingDate.Year(), b.BookingDate.Month(), b.BookingDate.Day(),
		b.StartTime.Hour(), b.StartTime.Minute(), 0, 0, loc,
	)
}

// CompanyBookingsFilter фильтр для получения бронирований компании
type CompanyBookingsFilter struct {
	CompanyID       int64          // Обязательный параметр
	ProfessionalID  *int64         // Фильтр по мастеру (опционально)
	CustomerID      *int64         // Фильтр по клиенту (опционально)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли неактивные бронирования (отмененные, no-show)
}
