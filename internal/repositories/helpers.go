package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505")
}

// notFoundOr maps gorm.ErrRecordNotFound to sentinel and wraps anything else.
func notFoundOr(err, sentinel error, wrap func(error) error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return wrap(err)
}
