package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/akshayraj/perks-portal/api/logging"
	"github.com/akshayraj/perks-portal/api/model"
	"github.com/akshayraj/perks-portal/api/util"
)

// Logger is a middleware that logs incoming HTTP requests
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		// Process request
		c.Next()

		latency := time.Since(start)

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
		}

		// Identity and access outcome, when upstream middleware resolved them.
		if user, ok := util.GetUserFromContext(c); ok {
			fields = append(fields, zap.String("userId", user.ID))
		}
		if value, exists := c.Get("accessStatus"); exists {
			if status, ok := value.(model.AccessStatus); ok {
				fields = append(fields, zap.String("accessReason", string(status.Reason)))
			}
		}

		if len(c.Errors) > 0 {
			// Log errors if any
			for _, e := range c.Errors.Errors() {
				fields = append(fields, zap.String("error", e))
			}
			logger.Error("Request error", fields...)
		} else {
			logger.Info("Request processed", fields...)
		}
	}
}
