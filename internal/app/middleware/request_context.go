package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestContext tags the request context with a trace id, echoes it back in
// the response headers, and writes one log line per request.
func RequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx := logger.WithTraceID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("route", route),
			slog.Int("status", status),
			slog.Int64("latency_ms", time.Since(start).Milliseconds()),
			slog.String("client_ip", c.ClientIP()),
		}

		switch {
		case status >= http.StatusInternalServerError:
			var err error = errors.New(http.StatusText(status))
			if last := c.Errors.Last(); last != nil {
				err = last.Err
			}
			logger.CtxError(ctx, "Request failed", err, attrs...)
		case status >= http.StatusBadRequest:
			logger.CtxWarn(ctx, "Request rejected", attrs...)
		default:
			logger.CtxInfo(ctx, "Request completed", attrs...)
		}
	}
}
