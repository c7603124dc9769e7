package middleware

import (
	"log/slog"
	"regexp"
	"time"

	"tracklytic/internal/handlers"
	"tracklytic/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the trace ID in and out of the API
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is shared with the handlers so error envelopes
	// carry the same ID
	TraceIDContextKey = handlers.TraceIDContextKey
)

var traceIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{8,64}$`)

// RequestID reuses a well-formed incoming X-Trace-ID or generates one, then
// exposes it on the echo context, the request context and the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if !traceIDPattern.MatchString(traceID) {
				traceID = uuid.New().String()
			}

			c.Set(TraceIDContextKey, traceID)
			c.SetRequest(c.Request().WithContext(services.WithCorrelationID(c.Request().Context(), traceID)))
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the request's trace ID or "" when RequestID did not run
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}

// RequestLogger writes one structured line per request. Server errors log at
// error level, client errors at warn.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// let the error handler write the status before it is logged
				c.Error(err)
			}

			status := c.Response().Status
			level := slog.LevelInfo
			switch {
			case status >= 500:
				level = slog.LevelError
			case status >= 400:
				level = slog.LevelWarn
			}

			attrs := []any{
				"trace_id", GetTraceID(c),
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if userID := c.Get(handlers.UserIDContextKey); userID != nil {
				attrs = append(attrs, "user_id", userID)
			}
			logger.Log(c.Request().Context(), level, "request", attrs...)

			return nil
		}
	}
}
