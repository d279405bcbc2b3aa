package bookings

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendafacil/booking-service/internal/domain"
	bookingRepo "github.com/agendafacil/booking-service/internal/infra/storage/booking"
	companyRepo "github.com/agendafacil/booking-service/internal/infra/storage/company"
	"github.com/agendafacil/booking-service/internal/service/bookings/models"
	"github.com/agendafacil/booking-service/pkg/types"
)

type fakeBookingRepo struct {
	booking *domain.Booking
	getErr  error

	cancelledID     int64
	cancelReason    string
	updatedID       int64
	updatedStatus   domain.BookingStatus
	cancelCalled    bool
	updateCalled    bool
	customerResults []*domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return f.booking, f.getErr
}

func (f *fakeBookingRepo) GetByCustomerID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return f.customerResults, nil
}

func (f *fakeBookingRepo) GetByCompanyWithFilter(_ context.Context, _ domain.CompanyBookingsFilter) ([]*domain.Booking, error) {
	return f.customerResults, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	f.updateCalled = true
	f.updatedID = id
	f.updatedStatus = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	f.cancelCalled = true
	f.cancelledID = id
	f.cancelReason = reason
	return nil
}

type fakeCompanyRepo struct {
	company *domain.Company
	err     error
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, _ int64) (*domain.Company, error) {
	return f.company, f.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustTime(t *testing.T, hour, minute int) types.TimeOfDay {
	t.Helper()
	v, err := types.NewTimeOfDay(hour, minute)
	require.NoError(t, err)
	return v
}

func testBooking(t *testing.T) *domain.Booking {
	t.Helper()
	return &domain.Booking{
		ID:             7,
		CompanyID:      1,
		CustomerID:     42,
		ProfessionalID: 5,
		ServiceID:      10,
		BookingDate:    time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		StartTime:      mustTime(t, 10, 0),
		EndTime:        mustTime(t, 11, 30),
		Status:         domain.StatusConfirmed,
	}
}

func testCompany(t *testing.T) *domain.Company {
	t.Helper()
	return &domain.Company{
		ID:                1,
		OwnerID:           900,
		Name:              "Salão Bela Vista",
		WorkingStartTime:  mustTime(t, 9, 0),
		WorkingEndTime:    mustTime(t, 18, 0),
		CancellationHours: 24,
		IsActive:          true,
	}
}

func newTestService(bookings *fakeBookingRepo, companies *fakeCompanyRepo, now time.Time) *Service {
	svc := NewService(bookings, companies, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: now}
	return svc
}

func TestCancel(t *testing.T) {
	// За два дня до записи при cancellation_hours=24
	now := time.Date(2026, 9, 8, 10, 0, 0, 0, time.UTC)

	t.Run("owner cancels in time", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: testBooking(t)}
		svc := newTestService(repo, &fakeCompanyRepo{company: testCompany(t)}, now)

		err := svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{
			CustomerID:         42,
			CancellationReason: "не смогу прийти",
		})
		require.NoError(t, err)
		assert.True(t, repo.cancelCalled)
		assert.Equal(t, int64(7), repo.cancelledID)
		assert.Equal(t, "не смогу прийти", repo.cancelReason)
	})

	t.Run("foreign booking is denied", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: testBooking(t)}
		svc := newTestService(repo, &fakeCompanyRepo{company: testCompany(t)}, now)

		err := svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{
			CustomerID: 999,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.False(t, repo.cancelCalled)
	})

	t.Run("inside cancellation window", func(t *testing.T) {
		// За 3 часа до начала при cancellation_hours=24
		late := time.Date(2026, 9, 10, 7, 0, 0, 0, time.UTC)
		repo := &fakeBookingRepo{booking: testBooking(t)}
		svc := newTestService(repo, &fakeCompanyRepo{company: testCompany(t)}, late)

		err := svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{CustomerID: 42})
		assert.ErrorIs(t, err, ErrCannotCancel)
		assert.False(t, repo.cancelCalled)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		booking := testBooking(t)
		booking.Status = domain.StatusCompleted
		repo := &fakeBookingRepo{booking: booking}
		svc := newTestService(repo, &fakeCompanyRepo{company: testCompany(t)}, now)

		err := svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{CustomerID: 42})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("booking not found", func(t *testing.T) {
		repo := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
		svc := newTestService(repo, &fakeCompanyRepo{company: testCompany(t)}, now)

		err := svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{CustomerID: 42})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("reason too long", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: testBooking(t)}
		svc := newTestService(repo, &fakeCompanyRepo{company: testCompany(t)}, now)

		err := svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{
			CustomerID:         42,
			CancellationReason: strings.Repeat("x", domain.MaxCancellationReasonLength+1),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestUpdateStatus(t *testing.T) {
	now := time.Date(2026, 9, 8, 10, 0, 0, 0, time.UTC)

	t.Run("valid transition", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: testBooking(t)}
		svc := newTestService(repo, &fakeCompanyRepo{company: testCompany(t)}, now)

		err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "in_progress"})
		require.NoError(t, err)
		assert.True(t, repo.updateCalled)
		assert.Equal(t, domain.StatusInProgress, repo.updatedStatus)
	})

	t.Run("unknown status", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: testBooking(t)}
		svc := newTestService(repo, &fakeCompanyRepo{company: testCompany(t)}, now)

		err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "postponed"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.False(t, repo.updateCalled)
	})

	t.Run("terminal status is frozen", func(t *testing.T) {
		booking := testBooking(t)
		booking.Status = domain.StatusCancelled
		repo := &fakeBookingRepo{booking: booking}
		svc := newTestService(repo, &fakeCompanyRepo{company: testCompany(t)}, now)

		err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "confirmed"})
		assert.ErrorIs(t, err, ErrCannotTransition)
		assert.False(t, repo.updateCalled)
	})
}

func TestGetByID(t *testing.T) {
	now := time.Date(2026, 9, 8, 10, 0, 0, 0, time.UTC)

	t.Run("customer reads own booking", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: testBooking(t)}
		svc := newTestService(repo, &fakeCompanyRepo{company: testCompany(t)}, now)

		resp, err := svc.GetByID(context.Background(), 7, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, "2026-09-10", resp.BookingDate)
		assert.Equal(t, "10:00", resp.StartTime)
		assert.Equal(t, "11:30", resp.EndTime)
		assert.Equal(t, "confirmed", resp.Status)
	})

	t.Run("company owner reads customer booking", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: testBooking(t)}
		svc := newTestService(repo, &fakeCompanyRepo{company: testCompany(t)}, now)

		resp, err := svc.GetByID(context.Background(), 7, 900)
		require.NoError(t, err)
		assert.Equal(t, int64(7), resp.ID)
	})

	t.Run("foreign user is denied", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: testBooking(t)}
		svc := newTestService(repo, &fakeCompanyRepo{company: testCompany(t)}, now)

		_, err := svc.GetByID(context.Background(), 7, 555)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestGetCompanyBookings(t *testing.T) {
	now := time.Date(2026, 9, 8, 10, 0, 0, 0, time.UTC)

	t.Run("owner lists company bookings", func(t *testing.T) {
		repo := &fakeBookingRepo{customerResults: []*domain.Booking{testBooking(t)}}
		svc := newTestService(repo, &fakeCompanyRepo{company: testCompany(t)}, now)

		resp, err := svc.GetCompanyBookings(context.Background(), &models.GetCompanyBookingsRequest{
			CompanyID: 1,
			UserID:    900,
		})
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, int64(7), resp.Bookings[0].ID)
	})

	t.Run("non-owner is denied", func(t *testing.T) {
		repo := &fakeBookingRepo{customerResults: []*domain.Booking{testBooking(t)}}
		svc := newTestService(repo, &fakeCompanyRepo{company: testCompany(t)}, now)

		_, err := svc.GetCompanyBookings(context.Background(), &models.GetCompanyBookingsRequest{
			CompanyID: 1,
			UserID:    42, // клиент компании, но не владелец
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("company not found", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		svc := newTestService(repo, &fakeCompanyRepo{err: companyRepo.ErrCompanyNotFound}, now)

		_, err := svc.GetCompanyBookings(context.Background(), &models.GetCompanyBookingsRequest{
			CompanyID: 1,
			UserID:    900,
		})
		assert.ErrorIs(t, err, ErrCompanyNotFound)
	})
}

func TestGetCustomerBookings(t *testing.T) {
	now := time.Date(2026, 9, 8, 10, 0, 0, 0, time.UTC)

	t.Run("empty history", func(t *testing.T) {
		svc := newTestService(&fakeBookingRepo{}, &fakeCompanyRepo{company: testCompany(t)}, now)

		resp, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{CustomerID: 42})
		require.NoError(t, err)
		assert.Empty(t, resp.Bookings)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		svc := newTestService(&fakeBookingRepo{}, &fakeCompanyRepo{company: testCompany(t)}, now)

		bad := "postponed"
		_, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
			CustomerID: 42,
			Status:     &bad,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
