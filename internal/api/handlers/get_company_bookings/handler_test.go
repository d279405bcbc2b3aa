package get_company_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendafacil/booking-service/internal/api/middleware"
	"github.com/agendafacil/booking-service/internal/service/bookings"
	"github.com/agendafacil/booking-service/internal/service/bookings/models"
)

type fakeBookingService struct {
	resp   *models.BookingListResponse
	err    error
	called bool
	req    *models.GetCompanyBookingsRequest
}

func (f *fakeBookingService) GetCompanyBookings(_ context.Context, req *models.GetCompanyBookingsRequest) (*models.BookingListResponse, error) {
	f.called = true
	f.req = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestRouter(service *fakeBookingService) http.Handler {
	h := NewHandler(service, nopLogger{})

	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/companies/{companyId}/bookings", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandleRequiresUser(t *testing.T) {
	service := &fakeBookingService{resp: &models.BookingListResponse{}}
	router := newTestRouter(service)

	// Запрос без X-User-ID не обслуживается
	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/1/bookings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, service.called)
}

func TestHandleNotOwner(t *testing.T) {
	service := &fakeBookingService{err: bookings.ErrAccessDenied}
	router := newTestRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/1/bookings", nil)
	req.Header.Set("X-User-ID", "555")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandleOwnerListsBookings(t *testing.T) {
	service := &fakeBookingService{resp: &models.BookingListResponse{
		Bookings: []models.BookingResponse{{ID: 7, CompanyID: 1}},
	}}
	router := newTestRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/1/bookings?date=2026-09-10", nil)
	req.Header.Set("X-User-ID", "900")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, service.req)
	// ID пользователя из заголовка доходит до сервиса
	assert.Equal(t, int64(900), service.req.UserID)
	assert.Equal(t, int64(1), service.req.CompanyID)
}

func TestHandleCompanyNotFound(t *testing.T) {
	service := &fakeBookingService{err: bookings.ErrCompanyNotFound}
	router := newTestRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/1/bookings", nil)
	req.Header.Set("X-User-ID", "900")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleInvalidParams(t *testing.T) {
	service := &fakeBookingService{}
	router := newTestRouter(service)

	// date и startDate/endDate взаимоисключающие
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/companies/1/bookings?date=2026-09-10&startDate=2026-09-01", nil)
	req.Header.Set("X-User-ID", "900")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, service.called)
}
