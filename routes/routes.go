package routes

import (
	"net/http"
	"time"

	"ysgtransport/handlers"
	"ysgtransport/middleware"
	"ysgtransport/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRideRoutes registers the ride request endpoints.
func RegisterRideRoutes(r *gin.Engine, rh *handlers.RideHandler) {
	api := r.Group("/api/rides")
	{
		api.POST("", rh.CreateRideHandler)
		api.GET("", rh.ListRidesHandler)
		api.GET("/history", rh.ListHistoryHandler)
		api.GET("/:id", rh.GetRideHandler)
		api.PATCH("/:id/status", rh.UpdateRideStatusHandler)
	}
}

// RegisterReminderRoutes registers the trigger endpoint for the external
// scheduler. Both GET and POST are accepted so any cron service works.
func RegisterReminderRoutes(r *gin.Engine, rh *handlers.ReminderHandler) {
	api := r.Group("/api/reminders")
	{
		api.Use(middleware.CronAuthMiddleware())
		api.GET("", rh.TriggerRemindersHandler)
		api.POST("", rh.TriggerRemindersHandler)
	}
}

// RegisterLocationRoutes registers the saved-places endpoint.
func RegisterLocationRoutes(r *gin.Engine, lh *handlers.LocationHandler) {
	api := r.Group("/api/locations")
	{
		api.GET("", lh.ListLocationsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, rideHandler *handlers.RideHandler, reminderHandler *handlers.ReminderHandler, locationHandler *handlers.LocationHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterRideRoutes(r, rideHandler)
	RegisterReminderRoutes(r, reminderHandler)
	RegisterLocationRoutes(r, locationHandler)
	RegisterHealthRoute(r)
}
