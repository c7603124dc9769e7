package errors

import (
	stderrors "errors"
	"fmt"
)

// DomainError is a business rule failure carrying the message shown to the user.
type DomainError struct {
	Code    ErrorCode
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches another DomainError with the same code, so sentinel domain errors
// compare equal to instances carrying a formatted message.
func (e *DomainError) Is(target error) bool {
	var other *DomainError
	if !stderrors.As(target, &other) {
		return false
	}
	return other.Code == e.Code
}

// NewDomainError builds a DomainError using the registered default message.
func NewDomainError(code ErrorCode) *DomainError {
	return &DomainError{Code: code, Message: GetErrorMessage(code)}
}

// Domainf builds a DomainError with a formatted message.
func Domainf(code ErrorCode, format string, args ...interface{}) *DomainError {
	return &DomainError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// AsDomainError unwraps err into a DomainError when it is one.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if stderrors.As(err, &de) {
		return de, true
	}
	return nil, false
}
