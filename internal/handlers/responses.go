package handlers

import (
	"log/slog"
	"net/http"

	"tracklytic/internal/errors"

	"github.com/labstack/echo/v4"
)

// ERROR HANDLING PATTERNS
//
// Every handler answers with the {status, message[, data]} envelope:
//
// 1. SendSuccess - for successful responses, with the HTTP status of the operation.
//
// 2. SendError - for client errors and business rule failures.
//    - Validation errors: SendError(c, errors.ValidationGeneral, errors.WithDetails(...)) -> 400
//    - Authentication errors: SendError(c, errors.AuthInvalidCredentials) -> 401
//    - Business rule failures: SendError(c, errors.BudgetGeneralExists) -> 200 with status "error"
//
// 3. SendServiceError - for errors returned by a service. Domain errors keep
//    their code and message, anything else becomes a system error.
//
// 4. SendSystemError - for unexpected errors (500). The cause is logged with
//    the trace id and never sent to the client.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendSuccess writes a success envelope
func SendSuccess(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, SuccessResponse{
		Status:  errors.StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendServiceError renders an error returned by a service
func SendServiceError(c echo.Context, err error) error {
	if domainErr, ok := errors.AsDomainError(err); ok {
		return SendError(c, domainErr.Code, errors.WithMessage(domainErr.Message))
	}
	return SendSystemError(c, err)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, cause := errors.WrapSystemError(err, traceID)
	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", cause,
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
