package routes

import (
	"net/http"

	"serene/handlers"
	"serene/utils"

	"github.com/gin-gonic/gin"
)

// RegisterExpertRoutes registers expert profile and schedule endpoints.
func RegisterExpertRoutes(r *gin.Engine, eh *handlers.ExpertHandler, ah *handlers.AvailabilityHandler) {
	api := r.Group("/api/experts")
	{
		api.POST("", eh.CreateExpertHandler)
		api.GET("/:id", eh.GetExpertHandler)
		api.DELETE("/:id", eh.DeleteExpertHandler)

		api.GET("/:id/schedule", eh.GetScheduleHandler)
		api.PUT("/:id/schedule", eh.UpdateScheduleHandler)

		api.GET("/:id/availability/day", ah.GetDayAvailabilityHandler)
		api.GET("/:id/availability/month", ah.GetMonthAvailabilityHandler)
	}
}

// RegisterBookingRoutes registers the session booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	api := r.Group("/api/bookings")
	{
		api.POST("", bh.CreateBookingHandler)
		api.GET("/:id", bh.GetBookingHandler)
		api.DELETE("/:id", bh.CancelBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}
