package handlers

import (
	"net/http"

	"tracklytic/internal/dto"
	"tracklytic/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler serves the user's transaction categories
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// Create adds a category
// @Summary Create category
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} SuccessResponse{data=models.Category}
// @Failure 200 {object} errors.ErrorResponse "CATEGORY_002 category already exists"
// @Router /tracker/add/category [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryService.Create(userID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusCreated, "Category Added", category)
}

// List returns every category of the user
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.Category}
// @Failure 200 {object} errors.ErrorResponse "CATEGORY_003 no categories"
// @Router /tracker/get/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	categories, err := h.categoryService.List(userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Categories retrieved successfully", categories)
}

// Delete removes a category. Transactions keep existing without it.
// @Summary Delete category
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} SuccessResponse
// @Router /tracker/category/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	categoryID, ok, err := parseIDParam(c, "id")
	if !ok {
		return err
	}

	if err := h.categoryService.Delete(userID, categoryID); err != nil {
		return SendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Category Deleted", nil)
}
