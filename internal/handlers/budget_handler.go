package handlers

import (
	"net/http"
	"time"

	"tracklytic/internal/dto"
	"tracklytic/internal/models"
	"tracklytic/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetHandler serves general and per-category spending limits
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
	now           func() time.Time
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface, clock func() time.Time) *BudgetHandler {
	if clock == nil {
		clock = time.Now
	}
	return &BudgetHandler{
		budgetService: budgetService,
		now:           clock,
	}
}

// CreateGeneral sets the user's general spending limit
// @Router /tracker/add/general/budget [post]
func (h *BudgetHandler) CreateGeneral(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	var req dto.GeneralBudgetRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	limit, err := h.budgetService.CreateGeneral(userID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusCreated, "General Budget Added", limit)
}

// CreateForCategory sets a spending limit on one category
// @Router /tracker/add/category/budget [post]
func (h *BudgetHandler) CreateForCategory(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	var req dto.CategoryBudgetRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	limit, err := h.budgetService.CreateForCategory(userID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusCreated, categoryLabel(limit)+" Budget Added", limit)
}

// EditGeneral changes the plan or amount of the general limit
// @Router /tracker/edit/general/budget/{id} [put]
func (h *BudgetHandler) EditGeneral(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	limitID, ok, err := parseIDParam(c, "id")
	if !ok {
		return err
	}

	var req dto.GeneralBudgetRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	limit, err := h.budgetService.EditGeneral(userID, limitID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "General Budget Updated", limit)
}

// EditCategory changes the category, plan or amount of a category limit
// @Router /tracker/edit/category/budget/{id} [put]
func (h *BudgetHandler) EditCategory(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	limitID, ok, err := parseIDParam(c, "id")
	if !ok {
		return err
	}

	var req dto.CategoryBudgetRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	limit, err := h.budgetService.EditCategory(userID, limitID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, categoryLabel(limit)+" Budget Updated", limit)
}

// List returns the general limit and every category limit
// @Router /tracker/budgets [get]
func (h *BudgetHandler) List(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	budgets, err := h.budgetService.List(userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Budgets retrieved successfully", budgets)
}

// Status reports the headroom left in the current period of every limit.
// The message is the general limit message.
// @Router /tracker/budget/status [get]
func (h *BudgetHandler) Status(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	status, err := h.budgetService.Status(userID, h.now())
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, status.Message, status)
}

func categoryLabel(limit *models.CategorySpendingLimit) string {
	if limit.Category == nil {
		return "Category"
	}
	return models.DisplayName(limit.Category.Name)
}
