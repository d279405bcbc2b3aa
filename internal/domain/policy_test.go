package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendafacil/booking-service/pkg/types"
)

func bookingAt(t *testing.T, status BookingStatus, date time.Time, hour, minute int) *Booking {
	t.Helper()
	start, err := types.NewTimeOfDay(hour, minute)
	require.NoError(t, err)
	end, err := start.AddMinutes(60)
	require.NoError(t, err)
	return &Booking{
		Status:      status,
		BookingDate: date,
		StartTime:   start,
		EndTime:     end,
	}
}

func TestCanBeCancelled(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name              string
		status            BookingStatus
		now               time.Time
		cancellationHours int
		want              bool
	}{
		{
			name:              "pending well before deadline",
			status:            StatusPending,
			now:               time.Date(2026, 9, 8, 10, 0, 0, 0, time.UTC),
			cancellationHours: 24,
			want:              true,
		},
		{
			name:              "confirmed well before deadline",
			status:            StatusConfirmed,
			now:               time.Date(2026, 9, 8, 10, 0, 0, 0, time.UTC),
			cancellationHours: 24,
			want:              true,
		},
		{
			name:              "inside cancellation window",
			status:            StatusConfirmed,
			now:               time.Date(2026, 9, 9, 15, 0, 0, 0, time.UTC),
			cancellationHours: 24,
			want:              false,
		},
		{
			name:              "exactly at deadline",
			status:            StatusPending,
			now:               time.Date(2026, 9, 9, 10, 0, 0, 0, time.UTC),
			cancellationHours: 24,
			want:              false,
		},
		{
			name:              "zero hours allows cancel until start",
			status:            StatusPending,
			now:               time.Date(2026, 9, 10, 9, 59, 0, 0, time.UTC),
			cancellationHours: 0,
			want:              true,
		},
		{
			name:              "in_progress is not cancellable",
			status:            StatusInProgress,
			now:               time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			cancellationHours: 0,
			want:              false,
		},
		{
			name:              "completed is not cancellable",
			status:            StatusCompleted,
			now:               time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			cancellationHours: 0,
			want:              false,
		},
		{
			name:              "cancelled stays cancelled",
			status:            StatusCancelled,
			now:               time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			cancellationHours: 0,
			want:              false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := bookingAt(t, tt.status, date, 10, 0)
			assert.Equal(t, tt.want, CanBeCancelled(b, tt.now, tt.cancellationHours, time.UTC))
		})
	}
}

func TestCanBeUpdated(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	assert.True(t, CanBeUpdated(bookingAt(t, StatusPending, date, 10, 0)))
	assert.True(t, CanBeUpdated(bookingAt(t, StatusConfirmed, date, 10, 0)))
	assert.True(t, CanBeUpdated(bookingAt(t, StatusInProgress, date, 10, 0)))
	assert.False(t, CanBeUpdated(bookingAt(t, StatusCompleted, date, 10, 0)))
	assert.False(t, CanBeUpdated(bookingAt(t, StatusCancelled, date, 10, 0)))
	assert.False(t, CanBeUpdated(bookingAt(t, StatusNoShow, date, 10, 0)))
}

func TestBookingIsActive(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	// Завершенные бронирования продолжают блокировать свой интервал
	assert.True(t, bookingAt(t, StatusCompleted, date, 10, 0).IsActive())
	assert.True(t, bookingAt(t, StatusPending, date, 10, 0).IsActive())
	assert.False(t, bookingAt(t, StatusCancelled, date, 10, 0).IsActive())
	assert.False(t, bookingAt(t, StatusNoShow, date, 10, 0).IsActive())
}
