package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"serene/models"
	"serene/services/availability"
	"serene/services/expert"
	"serene/utils"
)

// ExpertHandler exposes expert profiles and their recurring schedules.
type ExpertHandler struct {
	Service expert.Service
}

// NewExpertHandler constructs an ExpertHandler.
func NewExpertHandler(svc expert.Service) *ExpertHandler {
	return &ExpertHandler{Service: svc}
}

// CreateExpertHandler handles POST /api/experts.
func (h *ExpertHandler) CreateExpertHandler(c *gin.Context) {
	var input models.Expert
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	created, err := h.Service.Create(c.Request.Context(), &input)
	if err != nil {
		respondExpertError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"expert": created})
}

// GetExpertHandler handles GET /api/experts/:id.
func (h *ExpertHandler) GetExpertHandler(c *gin.Context) {
	e, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondExpertError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expert": e})
}

// GetScheduleHandler handles GET /api/experts/:id/schedule.
func (h *ExpertHandler) GetScheduleHandler(c *gin.Context) {
	e, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondExpertError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"timezone":         e.Timezone,
		"sessionDurations": e.SessionDurations,
		"weeklyTemplate":   e.WeeklyTemplate,
		"breakRules":       e.BreakRules,
	})
}

// UpdateScheduleHandler handles PUT /api/experts/:id/schedule.
func (h *ExpertHandler) UpdateScheduleHandler(c *gin.Context) {
	var update models.ScheduleUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	e, err := h.Service.UpdateSchedule(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondExpertError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Schedule updated",
		"expert":  e,
	})
}

// DeleteExpertHandler handles DELETE /api/experts/:id.
func (h *ExpertHandler) DeleteExpertHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondExpertError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expert deleted"})
}

func respondExpertError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, expert.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Expert not found", err.Error())
	case errors.Is(err, expert.ErrInvalidTimezone),
		errors.Is(err, availability.ErrInvalidWindow),
		errors.Is(err, availability.ErrInvalidDuration):
		utils.JSONError(c, http.StatusBadRequest, "Invalid schedule", err.Error())
	default:
		utils.GetLogger().Error("expert operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Expert operation failed", err.Error())
	}
}
