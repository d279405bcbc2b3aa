package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendafacil/booking-service/internal/domain"
	companyRepo "github.com/agendafacil/booking-service/internal/infra/storage/company"
	"github.com/agendafacil/booking-service/pkg/types"
)

// memoryBookingRepo хранит бронирования в памяти; потокобезопасен
type memoryBookingRepo struct {
	mu       sync.Mutex
	nextID   int64
	bookings []*domain.Booking
}

func newMemoryBookingRepo() *memoryBookingRepo {
	return &memoryBookingRepo{nextID: 1}
}

func (r *memoryBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *booking
	stored.ID = r.nextID
	r.nextID++
	r.bookings = append(r.bookings, &stored)

	result := stored
	return &result, nil
}

func (r *memoryBookingRepo) GetByCompanyWithFilter(_ context.Context, filter domain.CompanyBookingsFilter) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.CompanyID != filter.CompanyID {
			continue
		}
		if filter.ProfessionalID != nil && b.ProfessionalID != *filter.ProfessionalID {
			continue
		}
		if filter.StartDate != nil && b.BookingDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && b.BookingDate.After(*filter.EndDate) {
			continue
		}
		if !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

// mutexTxManager сериализует транзакции глобальным мьютексом, эмулируя
// поведение serializable-изоляции для конкурентных запросов
type mutexTxManager struct {
	mu sync.Mutex
}

func (m *mutexTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fakeCompanyRepo struct {
	company *domain.Company
	err     error
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, _ int64) (*domain.Company, error) {
	return f.company, f.err
}

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetByID(_ context.Context, _, _ int64) (*domain.Service, error) {
	return f.service, f.err
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

func testCompany(t *testing.T) *domain.Company {
	t.Helper()
	return &domain.Company{
		ID:                     1,
		Name:                   "Salão Bela Vista",
		WorkingStartTime:       mustTime(t, 9, 0),
		WorkingEndTime:         mustTime(t, 18, 0),
		BookingIntervalMinutes: 30,
		BookingAdvanceDays:     30,
		CancellationHours:      24,
		IsActive:               true,
	}
}

func testService(t *testing.T) *domain.Service {
	t.Helper()
	return &domain.Service{
		ID:                     10,
		CompanyID:              1,
		Name:                   "Corte feminino",
		Price:                  120,
		DurationMinutes:        60,
		BufferTimeMinutes:      30,
		MinAdvanceBookingHours: 2,
		IsActive:               true,
	}
}

func testRequest(t *testing.T, date time.Time, hour, minute int) *Request {
	t.Helper()
	return &Request{
		CompanyID:      1,
		CustomerID:     42,
		ProfessionalID: 5,
		ServiceID:      10,
		BookingDate:    date,
		StartTime:      mustTime(t, hour, minute),
	}
}

func newTestUseCase(t *testing.T, repo *memoryBookingRepo, now time.Time) *UseCase {
	t.Helper()
	uc := NewUseCase(
		repo,
		&fakeCompanyRepo{company: testCompany(t)},
		&fakeServiceRepo{service: testService(t)},
		&mutexTxManager{},
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecuteCreatesBooking(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(t, newMemoryBookingRepo(), now)

	resp, err := uc.Execute(context.Background(), testRequest(t, date, 10, 0))
	require.NoError(t, err)
	require.NotNil(t, resp.Booking)

	b := resp.Booking
	assert.NotZero(t, b.ID)
	assert.Equal(t, domain.StatusPending, b.Status)
	assert.Equal(t, "10:00", b.StartTime.String())
	// Занимаемый интервал включает буферное время услуги
	assert.Equal(t, "11:30", b.EndTime.String())

	// Денормализованные данные услуги копируются при создании
	assert.Equal(t, "Corte feminino", b.ServiceName)
	assert.Equal(t, 120.0, b.OriginalPrice)
	assert.Equal(t, 120.0, b.FinalPrice)
}

func TestExecuteSlotConflicts(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	repo := newMemoryBookingRepo()
	uc := newTestUseCase(t, repo, now)

	// Первое бронирование занимает 10:00-11:30 (услуга + буфер)
	_, err := uc.Execute(context.Background(), testRequest(t, date, 10, 0))
	require.NoError(t, err)

	tests := []struct {
		name    string
		hour    int
		minute  int
		wantErr error
	}{
		{"same slot", 10, 0, ErrSlotNotAvailable},
		{"overlaps occupied span", 11, 0, ErrSlotNotAvailable},
		{"overlaps buffer tail", 10, 30, ErrSlotNotAvailable},
		{"starts right after buffer", 11, 30, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), testRequest(t, date, tt.hour, tt.minute))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestExecuteCancelledBookingFreesSlot(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	repo := newMemoryBookingRepo()
	uc := newTestUseCase(t, repo, now)

	resp, err := uc.Execute(context.Background(), testRequest(t, date, 10, 0))
	require.NoError(t, err)

	// Отменяем бронирование напрямую в хранилище
	repo.mu.Lock()
	for _, b := range repo.bookings {
		if b.ID == resp.Booking.ID {
			b.Status = domain.StatusCancelled
		}
	}
	repo.mu.Unlock()

	_, err = uc.Execute(context.Background(), testRequest(t, date, 10, 0))
	assert.NoError(t, err)
}

func TestExecuteBookingWindowChecks(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    time.Time
		hour    int
		minute  int
		wantErr error
	}{
		{
			name:    "date in the past",
			date:    time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
			hour:    10,
			wantErr: ErrInvalidDate,
		},
		{
			name:    "date beyond advance days",
			date:    time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
			hour:    10,
			wantErr: ErrDateTooFarInFuture,
		},
		{
			name:    "same day inside minimum notice",
			date:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			hour:    9,
			minute:  30,
			wantErr: ErrTooLateToBook,
		},
		{
			name:   "same day after minimum notice",
			date:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			hour:   10,
			minute: 30,
		},
		{
			name:    "before opening",
			date:    time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
			hour:    8,
			wantErr: ErrOutsideWorkingHours,
		},
		{
			name:    "nominal duration spills past closing",
			date:    time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
			hour:    17,
			minute:  30,
			wantErr: ErrOutsideWorkingHours,
		},
		{
			// Буфер может выходить за закрытие: это мертвое время мастера
			name:   "buffer spills past closing",
			date:   time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
			hour:   17,
			minute: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(t, newMemoryBookingRepo(), now)

			resp, err := uc.Execute(context.Background(), testRequest(t, tt.date, tt.hour, tt.minute))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, resp.Booking)
		})
	}
}

func TestExecuteCompanyNotFound(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	uc := NewUseCase(
		newMemoryBookingRepo(),
		&fakeCompanyRepo{err: companyRepo.ErrCompanyNotFound},
		&fakeServiceRepo{service: testService(t)},
		&mutexTxManager{},
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: now}

	_, err := uc.Execute(context.Background(),
		testRequest(t, time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), 10, 0))
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestExecuteInvalidRequest(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	uc := newTestUseCase(t, newMemoryBookingRepo(), now)

	req := testRequest(t, time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), 10, 0)
	req.CustomerID = 0

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteConcurrentSameSlot(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	repo := newMemoryBookingRepo()
	uc := newTestUseCase(t, repo, now)

	const workers = 8
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := testRequest(t, date, 10, 0)
			req.CustomerID = int64(100 + i)
			_, errs[i] = uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	// Из конкурентных запросов на один слот ровно один успешен
	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		default:
			require.ErrorIs(t, err, ErrSlotNotAvailable)
			conflicted++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicted)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Len(t, repo.bookings, 1)
}
