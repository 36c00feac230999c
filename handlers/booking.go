package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"serene/models"
	"serene/services/availability"
	"serene/services/booking"
	"serene/utils"
)

// BookingHandler exposes booking creation, lookup, and cancellation.
type BookingHandler struct {
	Service booking.Service
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.Service) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input models.BookingRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	created, err := h.Service.Book(c.Request.Context(), input)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": created})
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// CancelBookingHandler handles DELETE /api/bookings/:id.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	b, err := h.Service.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Booking cancelled",
		"booking": b,
	})
}

func isDateParseError(err error) bool {
	var parseErr *time.ParseError
	return errors.As(err, &parseErr)
}

func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrSlotUnavailable):
		utils.JSONError(c, http.StatusConflict, "Slot not available", err.Error())
	case errors.Is(err, booking.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking not found", err.Error())
	case errors.Is(err, booking.ErrExpertNotFound):
		utils.JSONError(c, http.StatusNotFound, "Expert not found", err.Error())
	case errors.Is(err, availability.ErrInvalidTimeFormat),
		errors.Is(err, availability.ErrInvalidDuration),
		errors.Is(err, availability.ErrDurationNotOffered),
		isDateParseError(err):
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", err.Error())
	default:
		utils.GetLogger().Error("booking operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Booking operation failed", err.Error())
	}
}
