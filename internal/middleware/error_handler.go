package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"

	"tracklytic/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tracklytic_api_errors_total",
		Help: "API errors by code, route and status",
	},
	[]string{"code", "endpoint", "status"},
)

// statusCodes translates errors raised by echo itself (routing, binding,
// body limit) into registry codes.
var statusCodes = map[int]errors.ErrorCode{
	http.StatusBadRequest:            errors.ValidationGeneral,
	http.StatusUnauthorized:          errors.AuthMissingToken,
	http.StatusForbidden:             errors.AuthAccountLocked,
	http.StatusNotFound:              errors.SystemNotFound,
	http.StatusMethodNotAllowed:      errors.SystemNotFound,
	http.StatusRequestEntityTooLarge: errors.ReceiptTooLarge,
	http.StatusUnsupportedMediaType:  errors.ReceiptUnsupportedType,
	http.StatusUnprocessableEntity:   errors.ValidationGeneral,
	http.StatusTooManyRequests:       errors.SystemRateLimitExceeded,
	http.StatusServiceUnavailable:    errors.SystemServiceUnavailable,
}

// CustomHTTPErrorHandler renders every error a handler returns instead of
// writing itself in the {status, message, code} envelope.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	resp, status := errorEnvelope(err, traceID)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.Log(c.Request().Context(), level, "request failed",
		"trace_id", traceID,
		"code", resp.Code,
		"status", status,
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"error", err,
	)
	apiErrorsTotal.WithLabelValues(resp.Code, c.Path(), strconv.Itoa(status)).Inc()

	if sendErr := c.JSON(status, resp); sendErr != nil {
		slog.Error("Failed to send error response", "trace_id", traceID, "error", sendErr)
	}
}

func errorEnvelope(err error, traceID string) (*errors.ErrorResponse, int) {
	var (
		httpErr *echo.HTTPError
		verrs   validator.ValidationErrors
	)

	switch {
	case stderrors.As(err, &verrs):
		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[fe.Field()] = formatValidationError(fe)
		}
		return errors.NewValidationError(details, traceID), http.StatusBadRequest

	case stderrors.As(err, &httpErr):
		code, ok := statusCodes[httpErr.Code]
		if !ok {
			code = errors.SystemInternalError
		}
		resp := errors.NewErrorResponse(code, traceID)
		// echo's own messages are safe to show; internal errors keep the generic text
		if httpErr.Code < http.StatusInternalServerError {
			resp.Message = fmt.Sprint(httpErr.Message)
		}
		return resp, httpErr.Code

	default:
		if de, ok := errors.AsDomainError(err); ok {
			resp := errors.NewErrorResponse(de.Code, traceID, errors.WithMessage(de.Message))
			return resp, resp.GetHTTPStatus()
		}
		resp, _ := errors.WrapSystemError(err, traceID)
		return resp, resp.GetHTTPStatus()
	}
}

var validationMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email address",
	"uuid":      "must be a valid UUID",
	"datetime":  "must be a date in the format YYYY-MM-DD",
	"e164":      "must be a phone number in international format, e.g. +2348012345678",
	"money":     "must be a valid amount with at most 2 decimal places",
	"not_blank": "must not be blank",
}

var boundMessages = map[string]string{
	"gt":  "must be greater than %s",
	"gte": "must be greater than or equal to %s",
	"lt":  "must be less than %s",
	"lte": "must be less than or equal to %s",
	"len": "must be exactly %s characters long",
}

// formatValidationError turns a field error into the text shown in details
func formatValidationError(fe validator.FieldError) string {
	if msg, ok := validationMessages[fe.Tag()]; ok {
		return msg
	}
	if format, ok := boundMessages[fe.Tag()]; ok {
		return fmt.Sprintf(format, fe.Param())
	}

	switch fe.Tag() {
	case "min", "max":
		bound := "at least"
		if fe.Tag() == "max" {
			bound = "at most"
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be %s %s characters long", bound, fe.Param())
		}
		return fmt.Sprintf("must be %s %s", bound, fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
