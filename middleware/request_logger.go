package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"quizbuilder/logger"
)

func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	requestLog := log.With("component", "http")

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		requestLog.Info("request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", c.GetString(RequestIDKey),
		)
	}
}
