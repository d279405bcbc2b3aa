package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendafacil/booking-service/internal/domain"
	companyRepo "github.com/agendafacil/booking-service/internal/infra/storage/company"
	"github.com/agendafacil/booking-service/internal/service/settings/models"
	"github.com/agendafacil/booking-service/pkg/types"
)

type fakeCompanyRepo struct {
	company *domain.Company
	err     error

	updated *domain.Company
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, _ int64) (*domain.Company, error) {
	return f.company, f.err
}

func (f *fakeCompanyRepo) UpdateBookingSettings(_ context.Context, _ int64, company *domain.Company) (*domain.Company, error) {
	f.updated = company
	return company, nil
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
		OwnerID:                900,
		Name:                   "Salão Bela Vista",
		Slug:                   "bela-vista",
		WorkingStartTime:       mustTime(t, 9, 0),
		WorkingEndTime:         mustTime(t, 18, 0),
		BookingIntervalMinutes: 30,
		BookingAdvanceDays:     30,
		CancellationHours:      24,
		Timezone:               "America/Sao_Paulo",
		IsActive:               true,
	}
}

func ptrStr(s string) *string { return &s }
func ptrInt(v int) *int       { return &v }

func TestGet(t *testing.T) {
	svc := NewService(&fakeCompanyRepo{company: testCompany(t)}, nopLogger{})

	resp, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "09:00", resp.WorkingStartTime)
	assert.Equal(t, "18:00", resp.WorkingEndTime)
	assert.Equal(t, 30, resp.BookingIntervalMinutes)
	assert.Equal(t, "America/Sao_Paulo", resp.Timezone)

	svc = NewService(&fakeCompanyRepo{err: companyRepo.ErrCompanyNotFound}, nopLogger{})
	_, err = svc.Get(context.Background(), 1)
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestUpdatePartial(t *testing.T) {
	repo := &fakeCompanyRepo{company: testCompany(t)}
	svc := NewService(repo, nopLogger{})

	// Обновляем только шаг сетки - остальные поля не трогаем
	resp, err := svc.Update(context.Background(), 1, 900, &models.UpdateSettingsRequest{
		BookingIntervalMinutes: ptrInt(60),
	})
	require.NoError(t, err)
	assert.Equal(t, 60, resp.BookingIntervalMinutes)
	assert.Equal(t, "09:00", resp.WorkingStartTime)
	assert.Equal(t, 24, resp.CancellationHours)
	require.NotNil(t, repo.updated)
}

func TestUpdateWorkingWindow(t *testing.T) {
	svc := NewService(&fakeCompanyRepo{company: testCompany(t)}, nopLogger{})

	resp, err := svc.Update(context.Background(), 1, 900, &models.UpdateSettingsRequest{
		WorkingStartTime: ptrStr("08:00"),
		WorkingEndTime:   ptrStr("20:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "08:00", resp.WorkingStartTime)
	assert.Equal(t, "20:00", resp.WorkingEndTime)
}

func TestUpdateValidation(t *testing.T) {
	tests := []struct {
		name string
		req  *models.UpdateSettingsRequest
	}{
		{
			name: "malformed start time",
			req:  &models.UpdateSettingsRequest{WorkingStartTime: ptrStr("9am")},
		},
		{
			name: "inverted working window",
			req: &models.UpdateSettingsRequest{
				WorkingStartTime: ptrStr("18:00"),
				WorkingEndTime:   ptrStr("09:00"),
			},
		},
		{
			name: "interval not in allowed grid",
			req:  &models.UpdateSettingsRequest{BookingIntervalMinutes: ptrInt(45)},
		},
		{
			name: "advance days out of range",
			req:  &models.UpdateSettingsRequest{BookingAdvanceDays: ptrInt(500)},
		},
		{
			name: "cancellation hours out of range",
			req:  &models.UpdateSettingsRequest{CancellationHours: ptrInt(100)},
		},
		{
			name: "unknown timezone",
			req:  &models.UpdateSettingsRequest{Timezone: ptrStr("Mars/Olympus")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeCompanyRepo{company: testCompany(t)}
			svc := NewService(repo, nopLogger{})

			_, err := svc.Update(context.Background(), 1, 900, tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, repo.updated)
		})
	}
}

func TestUpdateCompanyNotFound(t *testing.T) {
	svc := NewService(&fakeCompanyRepo{err: companyRepo.ErrCompanyNotFound}, nopLogger{})

	_, err := svc.Update(context.Background(), 1, 900, &models.UpdateSettingsRequest{
		BookingIntervalMinutes: ptrInt(15),
	})
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestUpdateNotOwner(t *testing.T) {
	repo := &fakeCompanyRepo{company: testCompany(t)}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 1, 42, &models.UpdateSettingsRequest{
		BookingIntervalMinutes: ptrInt(15),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.updated)
}
