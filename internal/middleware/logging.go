package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PoseidonKRL/ControlFin/internal/id"
	"github.com/PoseidonKRL/ControlFin/internal/logger"
)

const requestIDKey = "requestID"

// RequestLogging returns a Gin middleware that logs each request with a unique
// request ID, method, path, status code, latency, owner key, and client IP.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := id.New()
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		latency := time.Since(start)
		log := logger.Get()
		log.Infow("request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", latency.Milliseconds(),
			"owner_key", OwnerKeyFrom(c),
			"client_ip", c.ClientIP(),
		)
	}
}
