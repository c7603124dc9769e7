package handlers

import (
	"net/http"
	"time"

	"tracklytic/internal/dto"
	"tracklytic/internal/models"
	"tracklytic/internal/services"

	"github.com/labstack/echo/v4"
)

// SavingPlanHandler serves saving plans
type SavingPlanHandler struct {
	planService services.SavingPlanServiceInterface
	now         func() time.Time
}

// NewSavingPlanHandler creates a new saving plan handler. Deadlines are
// judged against the calendar day of clock.
func NewSavingPlanHandler(planService services.SavingPlanServiceInterface, clock func() time.Time) *SavingPlanHandler {
	if clock == nil {
		clock = time.Now
	}
	return &SavingPlanHandler{
		planService: planService,
		now:         clock,
	}
}

// Create adds an Active saving plan
// @Router /tracker/add/saving/plan [post]
func (h *SavingPlanHandler) Create(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	var req dto.CreateSavingPlanRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	plan, err := h.planService.Create(userID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusCreated, "Saving Plan Added", plan)
}

// CheckStatus recomputes the status of every plan against today's date
// @Router /tracker/check/saving/plan/status [get]
func (h *SavingPlanHandler) CheckStatus(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	plans, err := h.planService.CheckStatus(userID, models.DateOnly(h.now()))
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Status Checked Successfully", plans)
}

// Renew sets a new target, and optionally a new deadline, on a plan
// @Router /tracker/renew/saving/plan/{id} [put]
func (h *SavingPlanHandler) Renew(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	planID, ok, err := parseIDParam(c, "id")
	if !ok {
		return err
	}

	var req dto.RenewSavingPlanRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	plan, err := h.planService.Renew(userID, planID, &req, models.DateOnly(h.now()))
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Saving Plan Renewed", plan)
}

// List returns the user's saving plans
// @Router /tracker/user/saving/plan [get]
func (h *SavingPlanHandler) List(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	plans, err := h.planService.List(userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Saving plans retrieved successfully", plans)
}
