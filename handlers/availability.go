package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"serene/models"
	"serene/services/availability"
	"serene/utils"
)

// AvailabilityHandler serves the calendar the booking UI renders: free start
// times for one day, and the dates of a month with any free slot at all.
type AvailabilityHandler struct {
	Service availability.Service
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.Service) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetDayAvailabilityHandler handles
// GET /api/experts/:id/availability/day?date=YYYY-MM-DD&duration=60
func (h *AvailabilityHandler) GetDayAvailabilityHandler(c *gin.Context) {
	expertID := c.Param("id")

	date, err := models.ParseDate(c.Query("date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid or missing date", err.Error())
		return
	}
	duration, ok := parseDuration(c)
	if !ok {
		return
	}

	result, err := h.Service.DayAvailability(c.Request.Context(), expertID, date, duration)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetMonthAvailabilityHandler handles
// GET /api/experts/:id/availability/month?year=2026&month=9&duration=60
func (h *AvailabilityHandler) GetMonthAvailabilityHandler(c *gin.Context) {
	expertID := c.Param("id")

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid or missing year", c.Query("year"))
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid or missing month", c.Query("month"))
		return
	}
	duration, ok := parseDuration(c)
	if !ok {
		return
	}

	result, err := h.Service.MonthAvailability(c.Request.Context(), expertID, year, time.Month(month), duration)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// parseDuration reads the optional duration query parameter. Zero means "use
// the expert's default session length".
func parseDuration(c *gin.Context) (int, bool) {
	raw := c.Query("duration")
	if raw == "" {
		return 0, true
	}
	duration, err := strconv.Atoi(raw)
	if err != nil || duration <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid duration", raw)
		return 0, false
	}
	return duration, true
}

func respondAvailabilityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, availability.ErrExpertNotFound):
		utils.JSONError(c, http.StatusNotFound, "Expert not found", err.Error())
	case errors.Is(err, availability.ErrInvalidDuration),
		errors.Is(err, availability.ErrDurationNotOffered),
		errors.Is(err, availability.ErrInvalidWindow),
		errors.Is(err, availability.ErrInvalidTimeFormat):
		utils.JSONError(c, http.StatusBadRequest, "Invalid availability query", err.Error())
	default:
		utils.GetLogger().Error("availability query failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute availability", err.Error())
	}
}
