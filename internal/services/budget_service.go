package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tracklytic/internal/dto"
	apperrors "tracklytic/internal/errors"
	"tracklytic/internal/models"
	"tracklytic/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type budgetService struct {
	limitRepo    repositories.SpendingLimitRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	txRepo       repositories.TransactionRepositoryInterface
	audit        AuditServiceInterface
	logger       *slog.Logger
}

func NewBudgetService(
	limitRepo repositories.SpendingLimitRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	txRepo repositories.TransactionRepositoryInterface,
	audit AuditServiceInterface,
	logger *slog.Logger,
) BudgetServiceInterface {
	return &budgetService{
		limitRepo:    limitRepo,
		categoryRepo: categoryRepo,
		txRepo:       txRepo,
		audit:        audit,
		logger:       logger,
	}
}

func (s *budgetService) CreateGeneral(userID uuid.UUID, req *dto.GeneralBudgetRequest) (*models.GeneralSpendingLimit, error) {
	if err := requireBudgetFields(req.BudgetPlan, req.BudgetAmount); err != nil {
		return nil, err
	}

	existing, err := s.limitRepo.GetGeneralByUserID(userID)
	switch {
	case err == nil:
		return nil, apperrors.Domainf(apperrors.BudgetGeneralExists, "User already has a %s General Budget", existing.BudgetPlan)
	case !errors.Is(err, repositories.ErrGeneralLimitNotFound):
		return nil, fmt.Errorf("failed to check general limit: %w", err)
	}

	limit := &models.GeneralSpendingLimit{
		UserID:       userID,
		BudgetPlan:   models.BudgetPlan(req.BudgetPlan),
		BudgetAmount: *req.BudgetAmount,
	}

	if err := s.limitRepo.CreateGeneral(limit); err != nil {
		if errors.Is(err, repositories.ErrGeneralLimitExists) {
			return nil, apperrors.Domainf(apperrors.BudgetGeneralExists, "User already has a %s General Budget", limit.BudgetPlan)
		}
		return nil, fmt.Errorf("failed to create general limit: %w", err)
	}

	s.auditLimit(userID, models.AuditActionBudgetCreated, "general_spending_limit", limit.ID, limit.BudgetPlan, limit.BudgetAmount)
	return limit, nil
}

func (s *budgetService) CreateForCategory(userID uuid.UUID, req *dto.CategoryBudgetRequest) (*models.CategorySpendingLimit, error) {
	if req.Category == nil {
		return nil, apperrors.Domainf(apperrors.ValidationRequiredField, "category is required")
	}
	if err := requireBudgetFields(req.BudgetPlan, req.BudgetAmount); err != nil {
		return nil, err
	}

	category, err := s.lookupCategory(userID, *req.Category)
	if err != nil {
		return nil, err
	}

	_, err = s.limitRepo.GetCategoryLimitByCategory(userID, category.ID)
	switch {
	case err == nil:
		return nil, categoryLimitExists(category)
	case !errors.Is(err, repositories.ErrCategoryLimitNotFound):
		return nil, fmt.Errorf("failed to check category limit: %w", err)
	}

	limit := &models.CategorySpendingLimit{
		UserID:       userID,
		CategoryID:   category.ID,
		BudgetPlan:   models.BudgetPlan(req.BudgetPlan),
		BudgetAmount: *req.BudgetAmount,
	}

	if err := s.limitRepo.CreateForCategory(limit); err != nil {
		if errors.Is(err, repositories.ErrCategoryLimitExists) {
			return nil, categoryLimitExists(category)
		}
		return nil, fmt.Errorf("failed to create category limit: %w", err)
	}
	limit.Category = category

	s.auditLimit(userID, models.AuditActionBudgetCreated, "category_spending_limit", limit.ID, limit.BudgetPlan, limit.BudgetAmount)
	return limit, nil
}

func (s *budgetService) EditGeneral(userID, limitID uuid.UUID, req *dto.GeneralBudgetRequest) (*models.GeneralSpendingLimit, error) {
	limit, err := s.limitRepo.GetGeneralByID(userID, limitID)
	if err != nil {
		if errors.Is(err, repositories.ErrGeneralLimitNotFound) {
			return nil, apperrors.NewDomainError(apperrors.BudgetGeneralNotFound)
		}
		return nil, fmt.Errorf("failed to get general limit: %w", err)
	}

	if req.BudgetPlan != "" {
		limit.BudgetPlan = models.BudgetPlan(req.BudgetPlan)
	}
	if req.BudgetAmount != nil {
		if !req.BudgetAmount.IsPositive() {
			return nil, invalidBudgetAmount()
		}
		limit.BudgetAmount = *req.BudgetAmount
	}

	if err := s.limitRepo.UpdateGeneral(limit); err != nil {
		if errors.Is(err, repositories.ErrGeneralLimitNotFound) {
			return nil, apperrors.NewDomainError(apperrors.BudgetGeneralNotFound)
		}
		return nil, fmt.Errorf("failed to update general limit: %w", err)
	}

	s.auditLimit(userID, models.AuditActionBudgetUpdated, "general_spending_limit", limit.ID, limit.BudgetPlan, limit.BudgetAmount)
	return limit, nil
}

func (s *budgetService) EditCategory(userID, limitID uuid.UUID, req *dto.CategoryBudgetRequest) (*models.CategorySpendingLimit, error) {
	limit, err := s.limitRepo.GetCategoryLimitByID(userID, limitID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryLimitNotFound) {
			return nil, apperrors.NewDomainError(apperrors.BudgetCategoryNotFound)
		}
		return nil, fmt.Errorf("failed to get category limit: %w", err)
	}

	if req.Category != nil && *req.Category != limit.CategoryID {
		category, err := s.lookupCategory(userID, *req.Category)
		if err != nil {
			return nil, err
		}

		_, err = s.limitRepo.GetCategoryLimitByCategory(userID, category.ID)
		switch {
		case err == nil:
			return nil, categoryLimitExists(category)
		case !errors.Is(err, repositories.ErrCategoryLimitNotFound):
			return nil, fmt.Errorf("failed to check category limit: %w", err)
		}

		limit.CategoryID = category.ID
		limit.Category = category
	}
	if req.BudgetPlan != "" {
		limit.BudgetPlan = models.BudgetPlan(req.BudgetPlan)
	}
	if req.BudgetAmount != nil {
		if !req.BudgetAmount.IsPositive() {
			return nil, invalidBudgetAmount()
		}
		limit.BudgetAmount = *req.BudgetAmount
	}

	if err := s.limitRepo.UpdateCategoryLimit(limit); err != nil {
		switch {
		case errors.Is(err, repositories.ErrCategoryLimitNotFound):
			return nil, apperrors.NewDomainError(apperrors.BudgetCategoryNotFound)
		case errors.Is(err, repositories.ErrCategoryLimitExists):
			return nil, categoryLimitExists(limit.Category)
		}
		return nil, fmt.Errorf("failed to update category limit: %w", err)
	}

	s.auditLimit(userID, models.AuditActionBudgetUpdated, "category_spending_limit", limit.ID, limit.BudgetPlan, limit.BudgetAmount)
	return limit, nil
}

func (s *budgetService) List(userID uuid.UUID) (*dto.BudgetListResponse, error) {
	general, err := s.limitRepo.GetGeneralByUserID(userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrGeneralLimitNotFound) {
			return nil, fmt.Errorf("failed to get general limit: %w", err)
		}
		general = nil
	}

	categories, err := s.limitRepo.ListCategoryLimits(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list category limits: %w", err)
	}

	return &dto.BudgetListResponse{General: general, Categories: categories}, nil
}

func (s *budgetService) GeneralStatus(userID uuid.UUID, now time.Time) (*models.LimitStatus, string, error) {
	limit, err := s.limitRepo.GetGeneralByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrGeneralLimitNotFound) {
			return nil, apperrors.GetErrorMessage(apperrors.BudgetNoGeneralLimit), nil
		}
		return nil, "", fmt.Errorf("failed to get general limit: %w", err)
	}

	start, end := limit.BudgetPlan.Window(now)
	spent, err := s.txRepo.SumDebits(userID, nil, start, end)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sum debits: %w", err)
	}

	status := EvaluateLimit(limit.ID, limit.BudgetPlan, limit.BudgetAmount, spent, now)
	return status, status.Message, nil
}

// CategoryStatus returns nil when the category has no limit.
func (s *budgetService) CategoryStatus(userID, categoryID uuid.UUID, now time.Time) (*models.LimitStatus, error) {
	limit, err := s.limitRepo.GetCategoryLimitByCategory(userID, categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryLimitNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category limit: %w", err)
	}
	return s.evaluateCategoryLimit(userID, limit, now)
}

func (s *budgetService) Status(userID uuid.UUID, now time.Time) (*dto.BudgetStatusResponse, error) {
	general, message, err := s.GeneralStatus(userID, now)
	if err != nil {
		return nil, err
	}

	limits, err := s.limitRepo.ListCategoryLimits(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list category limits: %w", err)
	}

	statuses := make([]models.LimitStatus, 0, len(limits))
	for i := range limits {
		status, err := s.evaluateCategoryLimit(userID, &limits[i], now)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, *status)
	}

	return &dto.BudgetStatusResponse{General: general, Message: message, Categories: statuses}, nil
}

func (s *budgetService) evaluateCategoryLimit(userID uuid.UUID, limit *models.CategorySpendingLimit, now time.Time) (*models.LimitStatus, error) {
	start, end := limit.BudgetPlan.Window(now)
	categoryID := limit.CategoryID

	spent, err := s.txRepo.SumDebits(userID, &categoryID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum category debits: %w", err)
	}

	status := EvaluateLimit(limit.ID, limit.BudgetPlan, limit.BudgetAmount, spent, now)
	status.CategoryID = &categoryID
	if limit.Category != nil {
		status.CategoryName = models.DisplayName(limit.Category.Name)
	}
	return status, nil
}

func (s *budgetService) lookupCategory(userID, categoryID uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(userID, categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.NewDomainError(apperrors.CategoryNotFound)
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

func (s *budgetService) auditLimit(userID uuid.UUID, action, resource string, limitID uuid.UUID, plan models.BudgetPlan, amount decimal.Decimal) {
	s.audit.Record(&models.AuditLog{
		UserID:     &userID,
		Action:     action,
		Resource:   resource,
		ResourceID: limitID.String(),
		Metadata: map[string]interface{}{
			"budget_plan":   string(plan),
			"budget_amount": amount.StringFixed(2),
		},
	})
}

func requireBudgetFields(plan string, amount *decimal.Decimal) error {
	if plan == "" {
		return apperrors.Domainf(apperrors.ValidationRequiredField, "budget_plan is required")
	}
	if !models.BudgetPlan(plan).IsValid() {
		return apperrors.NewDomainError(apperrors.BudgetInvalidBudgetPlan)
	}
	if amount == nil {
		return apperrors.Domainf(apperrors.ValidationRequiredField, "budget_amount is required")
	}
	if !amount.IsPositive() {
		return invalidBudgetAmount()
	}
	return nil
}

func invalidBudgetAmount() error {
	return apperrors.Domainf(apperrors.ValidationOutOfRange, "budget_amount must be greater than zero")
}

func categoryLimitExists(category *models.Category) error {
	name := "This"
	if category != nil {
		name = models.DisplayName(category.Name)
	}
	return apperrors.Domainf(apperrors.BudgetCategoryExists, "%s Category already has a budget", name)
}
