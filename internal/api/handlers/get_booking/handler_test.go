package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/agendafacil/booking-service/internal/api/middleware"
	"github.com/agendafacil/booking-service/internal/service/bookings"
	"github.com/agendafacil/booking-service/internal/service/bookings/models"
)

type fakeBookingService struct {
	resp   *models.BookingResponse
	err    error
	called bool
	userID int64
}

func (f *fakeBookingService) GetByID(_ context.Context, _ int64, userID int64) (*models.BookingResponse, error) {
	f.called = true
	f.userID = userID
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
	r.HandleFunc("/api/v1/bookings/{bookingId}", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandleRequiresUser(t *testing.T) {
	service := &fakeBookingService{resp: &models.BookingResponse{ID: 42, CustomerID: 777}}
	router := newTestRouter(service)

	// Запрос без X-User-ID не обслуживается
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, service.called)
}

func TestHandleAccessDenied(t *testing.T) {
	service := &fakeBookingService{err: bookings.ErrAccessDenied}
	router := newTestRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/42", nil)
	req.Header.Set("X-User-ID", "555")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, int64(555), service.userID)
}

func TestHandleOwnBooking(t *testing.T) {
	service := &fakeBookingService{resp: &models.BookingResponse{ID: 42, CustomerID: 777}}
	router := newTestRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/42", nil)
	req.Header.Set("X-User-ID", "777")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(777), service.userID)
}

func TestHandleNotFound(t *testing.T) {
	service := &fakeBookingService{err: bookings.ErrBookingNotFound}
	router := newTestRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/42", nil)
	req.Header.Set("X-User-ID", "777")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleInvalidID(t *testing.T) {
	service := &fakeBookingService{}
	router := newTestRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/abc", nil)
	req.Header.Set("X-User-ID", "777")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, service.called)
}
