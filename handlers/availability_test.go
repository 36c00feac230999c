package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serene/models"
	"serene/services/availability"
)

// stubAvailabilityService returns canned responses and records the arguments
// it was called with.
type stubAvailabilityService struct {
	day      *models.DayAvailability
	month    *models.MonthAvailability
	err      error
	gotDate  models.Date
	gotYear  int
	gotMonth time.Month
	gotDur   int
}

func (s *stubAvailabilityService) DayAvailability(ctx context.Context, expertID string, date models.Date, durationMinutes int) (*models.DayAvailability, error) {
	s.gotDate = date
	s.gotDur = durationMinutes
	return s.day, s.err
}

func (s *stubAvailabilityService) MonthAvailability(ctx context.Context, expertID string, year int, month time.Month, durationMinutes int) (*models.MonthAvailability, error) {
	s.gotYear = year
	s.gotMonth = month
	s.gotDur = durationMinutes
	return s.month, s.err
}

func newAvailabilityRouter(svc availability.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAvailabilityHandler(svc)
	r.GET("/api/experts/:id/availability/day", h.GetDayAvailabilityHandler)
	r.GET("/api/experts/:id/availability/month", h.GetMonthAvailabilityHandler)
	return r
}

func TestGetDayAvailabilityHandler(t *testing.T) {
	stub := &stubAvailabilityService{day: &models.DayAvailability{
		ExpertID:        "exp-1",
		Date:            "2026-09-10",
		DurationMinutes: 60,
		Slots:           []string{"09:00", "10:00"},
	}}
	router := newAvailabilityRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/experts/exp-1/availability/day?date=2026-09-10&duration=60", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.Date{Year: 2026, Month: time.September, Day: 10}, stub.gotDate)
	assert.Equal(t, 60, stub.gotDur)

	var body models.DayAvailability
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"09:00", "10:00"}, body.Slots)
}

func TestGetDayAvailabilityHandler_MissingDate(t *testing.T) {
	router := newAvailabilityRouter(&stubAvailabilityService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/experts/exp-1/availability/day", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDayAvailabilityHandler_OmittedDurationMeansDefault(t *testing.T) {
	stub := &stubAvailabilityService{day: &models.DayAvailability{}}
	router := newAvailabilityRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/experts/exp-1/availability/day?date=2026-09-10", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, stub.gotDur)
}

func TestGetDayAvailabilityHandler_InvalidDuration(t *testing.T) {
	router := newAvailabilityRouter(&stubAvailabilityService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/experts/exp-1/availability/day?date=2026-09-10&duration=-30", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDayAvailabilityHandler_ExpertNotFound(t *testing.T) {
	router := newAvailabilityRouter(&stubAvailabilityService{err: availability.ErrExpertNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/experts/ghost/availability/day?date=2026-09-10", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetDayAvailabilityHandler_DurationNotOffered(t *testing.T) {
	router := newAvailabilityRouter(&stubAvailabilityService{err: availability.ErrDurationNotOffered})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/experts/exp-1/availability/day?date=2026-09-10&duration=45", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMonthAvailabilityHandler(t *testing.T) {
	stub := &stubAvailabilityService{month: &models.MonthAvailability{
		ExpertID:        "exp-1",
		Year:            2026,
		Month:           9,
		DurationMinutes: 60,
		Dates:           []string{"2026-09-10", "2026-09-11"},
	}}
	router := newAvailabilityRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/experts/exp-1/availability/month?year=2026&month=9&duration=60", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2026, stub.gotYear)
	assert.Equal(t, time.September, stub.gotMonth)

	var body models.MonthAvailability
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"2026-09-10", "2026-09-11"}, body.Dates)
}

func TestGetMonthAvailabilityHandler_InvalidMonth(t *testing.T) {
	router := newAvailabilityRouter(&stubAvailabilityService{})

	for _, month := range []string{"", "0", "13", "sept"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/experts/exp-1/availability/month?year=2026&month="+month, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "month=%q", month)
	}
}
