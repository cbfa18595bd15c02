package middleware

import (
	"net/http"
	"strings"

	"ysgtransport/config"

	"github.com/gin-gonic/gin"
)

// CronAuthMiddleware guards the reminder trigger endpoint with the shared
// scheduler secret. Rejects before any sweep work happens.
func CronAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		if token != config.AppConfig.CronSecret {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Next()
	}
}
