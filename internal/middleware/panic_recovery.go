package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"tracklytic/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a handler panic into a SYSTEM_001 envelope. The panic
// value and stack only go to the log, never to the client.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				slog.ErrorContext(c.Request().Context(), "Panic recovered",
					"trace_id", traceID,
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
				)
				apiErrorsTotal.WithLabelValues(string(errors.SystemInternalError), c.Path(), "500").Inc()

				if c.Response().Committed {
					return
				}
				resp := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				err = c.JSON(http.StatusInternalServerError, resp)
			}()

			return next(c)
		}
	}
}
