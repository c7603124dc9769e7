package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ErrorResponse is the error envelope shared by every endpoint.
type ErrorResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details,omitempty"`
	TraceID string            `json:"trace_id,omitempty"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails attaches field level messages.
func WithDetails(details map[string]string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Message = message
	}
}

// NewErrorResponse creates an error envelope for code.
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Status:  StatusError,
		Code:    string(code),
		Message: GetErrorMessage(code),
		TraceID: traceID,
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// NewValidationError creates a validation envelope with per-field messages.
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(fieldErrors))
}

// WrapSystemError hides err behind a generic message. err is returned for server-side logging.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

// WrapDatabaseError hides a database error behind a generic message.
func WrapDatabaseError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemDatabaseError, traceID), err
}

// ToJSON serializes the error response to JSON bytes
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// GetHTTPStatus returns the HTTP status for code. Business rule failures use 200
// so clients read the outcome from the envelope.
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	case ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationOutOfRange, ValidationInvalidDate, TransactionInvalidCursor,
		ReceiptMissingFile, ReceiptUnsupportedType, AuthWeakPassword:
		return http.StatusBadRequest

	case AuthInvalidCredentials, AuthMissingToken, AuthExpiredToken, AuthInvalidTokenFormat:
		return http.StatusUnauthorized

	case AuthAccountLocked:
		return http.StatusForbidden

	case SystemNotFound:
		return http.StatusNotFound

	case ReceiptTooLarge:
		return http.StatusRequestEntityTooLarge

	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests

	case SystemServiceUnavailable:
		return http.StatusServiceUnavailable

	case SystemInternalError, SystemDatabaseError:
		return http.StatusInternalServerError
	}

	if IsDomainCode(code) {
		return http.StatusOK
	}
	return http.StatusInternalServerError
}

// IsDomainCode reports whether code is a business rule outcome.
func IsDomainCode(code ErrorCode) bool {
	if !IsValidErrorCode(code) {
		return false
	}
	prefix, _, _ := strings.Cut(string(code), "_")
	switch prefix {
	case "CATEGORY", "BUDGET", "SAVING", "TRANSACTION", "RECURRING", "RECEIPT", "INSIGHT":
		return true
	case "AUTH":
		return code == AuthEmailTaken
	}
	return false
}

// GetHTTPStatus returns the HTTP status code for the error response
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Code))
}

// IsClientError returns true if the error is a 4xx client error
func (er *ErrorResponse) IsClientError() bool {
	status := er.GetHTTPStatus()
	return status >= 400 && status < 500
}

// IsServerError returns true if the error is a 5xx server error
func (er *ErrorResponse) IsServerError() bool {
	return er.GetHTTPStatus() >= 500
}

func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Code, er.Message, er.TraceID)
}
