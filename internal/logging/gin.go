package logging

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request id back to the client.
const RequestIDHeader = "X-Request-ID"

const requestLoggerKey = "logging.request_logger"

// GinMiddleware tags every request with a request id and logs one line per
// request once the handler chain has finished.
func GinMiddleware(l Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)

		rl := l.With("request_id", id)
		c.Set(requestLoggerKey, rl)

		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		}
		ctx := c.Request.Context()
		switch {
		case c.Writer.Status() >= 500:
			rl.Error(ctx, "request", args...)
		default:
			rl.Info(ctx, "request", args...)
		}
	}
}

// FromGin returns the request-scoped logger set by GinMiddleware, or
// fallback when the middleware is not installed.
func FromGin(c *gin.Context, fallback Logger) Logger {
	if v, ok := c.Get(requestLoggerKey); ok {
		if l, ok := v.(Logger); ok {
			return l
		}
	}
	return fallback
}
