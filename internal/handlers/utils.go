package handlers

import (
	"fmt"
	"strings"

	"tracklytic/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// UserIDContextKey is set by the auth middleware
const UserIDContextKey = "user_id"

// Helper function to extract user ID from context
// Returns ErrUnauthorized if user ID is missing or invalid
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userIDValue := c.Get(UserIDContextKey)
	if userIDValue == nil {
		return uuid.UUID{}, ErrUnauthorized
	}

	userID, ok := userIDValue.(uuid.UUID)
	if !ok {
		return uuid.UUID{}, ErrUnauthorized
	}

	return userID, nil
}

// requireUser returns the authenticated user id or writes a 401 response.
// ok is false when the response has already been written.
func requireUser(c echo.Context) (uuid.UUID, bool, error) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return uuid.UUID{}, false, SendError(c, errors.AuthMissingToken)
	}
	return userID, true, nil
}

// parseIDParam parses a uuid path parameter or writes a 400 response.
func parseIDParam(c echo.Context, name string) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.UUID{}, false, SendError(c, errors.ValidationInvalidFormat,
			errors.WithDetails(map[string]string{name: "must be a valid UUID"}))
	}
	return id, true, nil
}

func invalidBody(c echo.Context) error {
	return SendError(c, errors.ValidationGeneral,
		errors.WithDetails(map[string]string{"body": "Invalid request body"}))
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}
