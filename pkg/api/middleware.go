package api

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/trustlane/vetd/pkg/correlation"
)

// correlationMiddleware binds the request's correlation identifier to the
// request context and echoes it on the response. A missing header gets a
// freshly generated identifier.
func correlationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(correlation.HeaderName)
		if id == "" {
			id = correlation.NewID()
		}
		c.Request = c.Request.WithContext(correlation.WithID(c.Request.Context(), id))
		c.Header(correlation.HeaderName, id)
		c.Next()
	}
}

// requestLogger logs one line per request with the correlation identifier.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("Request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"correlation_id", correlation.FromContext(c.Request.Context()),
		)
	}
}
