package handlers

import (
	"net/http"
	"strconv"

	"tracklytic/internal/dto"
	apperrors "tracklytic/internal/errors"
	"tracklytic/internal/services"

	"github.com/labstack/echo/v4"
)

// RecurringHandler serves recurring transaction templates
type RecurringHandler struct {
	recurringService services.RecurringServiceInterface
}

// NewRecurringHandler creates a new recurring transaction handler
func NewRecurringHandler(recurringService services.RecurringServiceInterface) *RecurringHandler {
	return &RecurringHandler{recurringService: recurringService}
}

// Create adds a template. Its first occurrence is created on next_due_date.
// @Router /tracker/recurring [post]
func (h *RecurringHandler) Create(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	var req dto.CreateRecurringRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	recurring, err := h.recurringService.Create(userID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusCreated, "Recurring transaction created successfully", recurring)
}

// List returns the templates of the user. ?active=true hides deactivated ones.
// @Router /tracker/recurring [get]
func (h *RecurringHandler) List(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	activeOnly := false
	if raw := c.QueryParam("active"); raw != "" {
		activeOnly, err = strconv.ParseBool(raw)
		if err != nil {
			return SendError(c, apperrors.ValidationInvalidFormat,
				apperrors.WithDetails(map[string]string{"active": "must be true or false"}))
		}
	}

	items, err := h.recurringService.List(userID, activeOnly)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Recurring transactions retrieved successfully", items)
}

// Deactivate stops a template from producing further transactions
// @Router /tracker/recurring/{id} [delete]
func (h *RecurringHandler) Deactivate(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	recurringID, ok, err := parseIDParam(c, "id")
	if !ok {
		return err
	}

	if err := h.recurringService.Deactivate(userID, recurringID); err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Recurring transaction deactivated", nil)
}
