package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"sejour-backend/internal/service"
)

type stubPropertyService struct {
	service.PropertyService
	blocked []time.Time
}

func (s *stubPropertyService) ListBlockedDates(_ context.Context, _ int32) ([]time.Time, error) {
	return s.blocked, nil
}

type stubBookingService struct {
	service.BookingService
	available bool
	calls     int
}

func (s *stubBookingService) CheckAvailability(_ context.Context, _ int32, _, _ time.Time) (bool, error) {
	s.calls++
	return s.available, nil
}

func availabilityRequest(query string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/2/availability"+query, nil)
	return mux.SetURLVars(req, map[string]string{"id": "2"})
}

func TestPropertyHandler_CheckAvailability(t *testing.T) {
	t.Run("Malformed dates are rejected", func(t *testing.T) {
		bookingSvc := &stubBookingService{available: true}
		h := NewPropertyHandler(&stubPropertyService{}, bookingSvc)

		rec := httptest.NewRecorder()
		h.CheckAvailability(rec, availabilityRequest("?check_in=juillet&check_out=2026-07-04"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, bookingSvc.calls)
	})

	t.Run("One date without the other is rejected", func(t *testing.T) {
		bookingSvc := &stubBookingService{available: true}
		h := NewPropertyHandler(&stubPropertyService{}, bookingSvc)

		rec := httptest.NewRecorder()
		h.CheckAvailability(rec, availabilityRequest("?check_in=2026-07-01"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, bookingSvc.calls)
	})

	t.Run("No dates returns the calendar only", func(t *testing.T) {
		blocked := []time.Time{time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC)}
		h := NewPropertyHandler(&stubPropertyService{blocked: blocked}, &stubBookingService{})

		rec := httptest.NewRecorder()
		h.CheckAvailability(rec, availabilityRequest(""))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp availabilityResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Available)
		assert.Len(t, resp.BlockedDates, 1)
	})

	t.Run("Valid range reports the resolver's verdict", func(t *testing.T) {
		bookingSvc := &stubBookingService{available: false}
		h := NewPropertyHandler(&stubPropertyService{}, bookingSvc)

		rec := httptest.NewRecorder()
		h.CheckAvailability(rec, availabilityRequest("?check_in=2026-07-01&check_out=2026-07-04"))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp availabilityResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Available)
		assert.Equal(t, 1, bookingSvc.calls)
	})
}
