package handlers

import (
	"net/http"

	"tracklytic/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints.
// The routes are only registered when APP_ENV is development.
type DevHandler struct {
	seeder services.DemoSeederInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(seeder services.DemoSeederInterface) *DevHandler {
	return &DevHandler{seeder: seeder}
}

// Seed fills the authenticated account with generated history
//
// Method: POST /dev/seed
// Authentication: Required
// Environment: Development only
//
// Query parameters:
//   - count: Number of transactions to generate (default: 60, max: 1000)
//
// Success Response: 201 Created
//   - data.categories: categories created
//   - data.transactions: transactions created
//   - data.saving_plans, data.budgets: plans and limits created
func (h *DevHandler) Seed(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	resp, err := h.seeder.Seed(userID, getIntParam(c, "count", 0))
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusCreated, "Demo data generated successfully", resp)
}
